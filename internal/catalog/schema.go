// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import (
	"github.com/hashicorp/hcl/v2"
)

// manifestFile is the top-level structure of a manifest. A file may declare
// any number of compilers.
type manifestFile struct {
	Compilers []*compilerBlock `hcl:"compiler,block"`
}

// compilerBlock represents a `compiler "<key>"` block.
type compilerBlock struct {
	Key         string      `hcl:"key,label"`
	Name        string      `hcl:"name"`
	Description string      `hcl:"description,optional"`
	WorkingDir  string      `hcl:"working_dir,optional"`
	Args        []*argBlock `hcl:"arg,block"`
}

// argBlock represents an `arg "<ID>"` block inside a compiler.
type argBlock struct {
	ID          string         `hcl:"id,label"`
	Name        string         `hcl:"name,optional"`
	Token       string         `hcl:"token,optional"`
	Description string         `hcl:"description,optional"`
	Type        hcl.Expression `hcl:"type"`
	Default     hcl.Expression `hcl:"default,optional"`
	Base        bool           `hcl:"base,optional"`
	Games       []int          `hcl:"games,optional"`
}
