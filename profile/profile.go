// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package profile stores a configured compiler pipeline, such as
// VBSP → VVIS → VRAD, as an HCL or JSON document.
//
// A document lists every argument of every compiler, base arguments
// included, so that restoring it yields exactly the same BuildArgs output.
package profile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/internal/ctxlog"
	"github.com/specialistvlad/srcbuild/toolset"
	"github.com/zclconf/go-cty/cty"
)

// Profile is an ordered pipeline of compilers.
type Profile struct {
	ID        uuid.UUID
	Compilers []toolset.Compiler
}

// New returns a profile with a fresh random ID.
func New(compilers ...toolset.Compiler) *Profile {
	return &Profile{ID: uuid.New(), Compilers: compilers}
}

// Format is a document encoding.
type Format int

const (
	FormatHCL Format = iota
	FormatJSON
)

// FormatForPath picks the format from the file extension. Anything that is
// not ".json" is treated as HCL.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatHCL
}

// Load reads and decodes the profile at path.
func Load(ctx context.Context, path string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p *Profile
	switch FormatForPath(path) {
	case FormatJSON:
		p, err = DecodeJSON(src)
	default:
		p, err = DecodeHCL(src, path)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded profile.", "path", path, "id", p.ID, "compilers", len(p.Compilers))
	return p, nil
}

// Save encodes the profile in the format matching path and writes it.
func (p *Profile) Save(ctx context.Context, path string) error {
	var (
		data []byte
		err  error
	)
	switch FormatForPath(path) {
	case FormatJSON:
		data, err = p.EncodeJSON()
		if err != nil {
			return err
		}
	default:
		data = p.EncodeHCL()
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Saved profile.", "path", path, "id", p.ID)
	return nil
}

// resolveEntry checks one stored argument against the tool's catalog.
func resolveEntry(spec *compiler.ToolSpec, id string, base bool, v cty.Value) (compiler.Entry, error) {
	arg, ok := spec.Arg(id)
	if !ok {
		return compiler.Entry{}, fmt.Errorf("%s has no argument %q", spec.Name, id)
	}
	val, err := compiler.ValueFromCty(arg.Kind, v)
	if err != nil {
		return compiler.Entry{}, fmt.Errorf("argument %q: %w", id, err)
	}
	return compiler.Entry{ID: id, Value: val, Base: base}, nil
}

func parseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid profile id %q: %w", s, err)
	}
	return id, nil
}
