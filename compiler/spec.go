// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/btree"
)

// ArgSpec is the static catalog metadata of one supported argument.
type ArgSpec struct {
	// ID identifies the argument within its tool, e.g. "MicroVolumeTest".
	ID string
	// Name is the human-readable name, e.g. "Micro Volume Test".
	Name string
	// Token is the literal flag emitted on the command line. It is empty for
	// positional arguments such as the map file.
	Token       string
	Description string
	Kind        ValueKind
	// Default is the canonical payload, if the catalog declares one.
	Default *Value
	// Base marks arguments that a default-constructed compiler starts with.
	Base bool
	// Games lists the App IDs the argument works with. Nil means all games.
	Games []uint32
}

// IsCompatibleWithGame reports whether the argument can be used with the game.
func (s *ArgSpec) IsCompatibleWithGame(appID uint32) bool {
	if s.Games == nil {
		return true
	}
	return slices.Contains(s.Games, appID)
}

// ToolSpec is the catalog of one compiler tool. It is immutable once built.
type ToolSpec struct {
	Name        string
	Description string
	// WorkingDir is a template that may contain placeholders, e.g. "$binDir".
	WorkingDir string

	args    []*ArgSpec
	byID    map[string]*ArgSpec
	byToken btree.Map[string, *ArgSpec]
}

// NewToolSpec validates the argument list and builds the lookup indexes.
// Arguments keep their declaration order.
func NewToolSpec(name, description, workingDir string, args []*ArgSpec) (*ToolSpec, error) {
	if name == "" {
		return nil, fmt.Errorf("tool name is required")
	}
	spec := &ToolSpec{
		Name:        name,
		Description: description,
		WorkingDir:  workingDir,
		args:        make([]*ArgSpec, 0, len(args)),
		byID:        make(map[string]*ArgSpec, len(args)),
	}

	for i, arg := range args {
		if arg.ID == "" {
			return nil, fmt.Errorf("tool %s: arg[%d]: id is required", name, i)
		}
		if _, exists := spec.byID[arg.ID]; exists {
			return nil, fmt.Errorf("tool %s: arg %q: duplicate id", name, arg.ID)
		}
		if arg.Kind < KindFlag || arg.Kind > KindPath {
			return nil, fmt.Errorf("tool %s: arg %q: invalid kind %s", name, arg.ID, arg.Kind)
		}
		if arg.Token == "" && arg.Kind == KindFlag {
			return nil, fmt.Errorf("tool %s: arg %q: flag arguments need a token", name, arg.ID)
		}
		if arg.Default != nil && arg.Default.Kind() != arg.Kind {
			return nil, fmt.Errorf("tool %s: arg %q: default is a %s, want %s", name, arg.ID, arg.Default.Kind(), arg.Kind)
		}
		if arg.Base && arg.Kind != KindFlag && arg.Default == nil {
			return nil, fmt.Errorf("tool %s: arg %q: base arguments need a default value", name, arg.ID)
		}
		if arg.Token != "" {
			if prev, exists := spec.byToken.Get(arg.Token); exists {
				return nil, fmt.Errorf("tool %s: arg %q: token %q already used by %q", name, arg.ID, arg.Token, prev.ID)
			}
			spec.byToken.Set(arg.Token, arg)
		}
		spec.byID[arg.ID] = arg
		spec.args = append(spec.args, arg)
	}

	return spec, nil
}

// Args returns every argument in declaration order.
func (t *ToolSpec) Args() []*ArgSpec {
	return slices.Clone(t.args)
}

// Arg looks an argument up by ID.
func (t *ToolSpec) Arg(id string) (*ArgSpec, bool) {
	arg, ok := t.byID[id]
	return arg, ok
}

// Lookup finds the argument emitted with the given flag token.
func (t *ToolSpec) Lookup(token string) (*ArgSpec, bool) {
	return t.byToken.Get(token)
}

// WithTokenPrefix returns the arguments whose token starts with prefix,
// sorted by token. Positional arguments are never included.
func (t *ToolSpec) WithTokenPrefix(prefix string) []*ArgSpec {
	var out []*ArgSpec
	t.byToken.Ascend(prefix, func(token string, arg *ArgSpec) bool {
		if !strings.HasPrefix(token, prefix) {
			return false
		}
		out = append(out, arg)
		return true
	})
	return out
}

// BaseArgs returns the arguments a default-constructed compiler starts with.
func (t *ToolSpec) BaseArgs() []*ArgSpec {
	var out []*ArgSpec
	for _, arg := range t.args {
		if arg.Base {
			out = append(out, arg)
		}
	}
	return out
}
