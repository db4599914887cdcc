// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/srcbuild/compiler"
)

// Registry holds the loaded tool catalogs, keyed by the compiler block label
// (e.g. "vbsp").
type Registry struct {
	tools map[string]*compiler.ToolSpec
	keys  []string
}

func newRegistry() *Registry {
	return &Registry{tools: make(map[string]*compiler.ToolSpec)}
}

func (r *Registry) add(key string, spec *compiler.ToolSpec) error {
	if _, exists := r.tools[key]; exists {
		return fmt.Errorf("compiler %q already defined", key)
	}
	r.tools[key] = spec
	r.keys = append(r.keys, key)
	return nil
}

// Tool returns the catalog registered under key.
func (r *Registry) Tool(key string) (*compiler.ToolSpec, bool) {
	spec, ok := r.tools[key]
	return spec, ok
}

// MustTool is like Tool but panics when the key is unknown.
func (r *Registry) MustTool(key string) *compiler.ToolSpec {
	spec, ok := r.tools[key]
	if !ok {
		panic(fmt.Sprintf("catalog: no compiler %q", key))
	}
	return spec
}

// Keys returns the registered keys in load order.
func (r *Registry) Keys() []string {
	return slices.Clone(r.keys)
}

func (r *Registry) Len() int {
	return len(r.keys)
}
