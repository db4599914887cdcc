// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import (
	"context"
	"embed"
	"fmt"
	"sync"
)

//go:embed manifests/*.hcl
var manifests embed.FS

var builtin struct {
	once sync.Once
	reg  *Registry
}

// Builtin returns the registry of the embedded manifests, loading it on first
// use. It panics if an embedded manifest is invalid.
func Builtin() *Registry {
	builtin.once.Do(func() {
		reg, err := Load(context.Background(), manifests, "manifests/*"+ManifestExt)
		if err != nil {
			panic(fmt.Errorf("catalog: built-in manifests: %w", err))
		}
		builtin.reg = reg
	})
	return builtin.reg
}
