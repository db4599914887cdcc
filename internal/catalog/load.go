// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/internal/ctxlog"
	"github.com/specialistvlad/srcbuild/internal/fsutil"
)

// ManifestExt is the file extension of catalog manifests.
const ManifestExt = ".hcl"

// Load parses every manifest in fsys matching pattern (see fs.Glob) into a
// new Registry. Files are loaded in lexical order.
func Load(ctx context.Context, fsys fs.FS, pattern string) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest pattern %q: %w", pattern, err)
	}
	logger.Debug("Catalog loader started.", "pattern", pattern, "file_count", len(files))

	reg := newRegistry()
	parser := hclparse.NewParser()
	for _, file := range files {
		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", file, err)
		}
		if err := loadManifest(ctx, parser, reg, src, file); err != nil {
			return nil, err
		}
	}

	logger.Debug("Catalog loading complete.", "compilers", reg.Keys())
	return reg, nil
}

// LoadPaths loads manifests from disk. Each path is either a manifest file or
// a directory that is searched recursively for *.hcl files.
func LoadPaths(ctx context.Context, paths ...string) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ManifestExt)
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", path, err)
		}
		if len(found) == 0 {
			logger.Warn("No manifest files found in path", "path", path)
		}
		files = append(files, found...)
	}

	reg := newRegistry()
	parser := hclparse.NewParser()
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", file, err)
		}
		if err := loadManifest(ctx, parser, reg, src, file); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func loadManifest(ctx context.Context, parser *hclparse.Parser, reg *Registry, src []byte, filename string) error {
	logger := ctxlog.FromContext(ctxlog.With(ctx, "file", filename))

	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	var root manifestFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}

	for _, block := range root.Compilers {
		spec, err := translateCompiler(block)
		if err != nil {
			return fmt.Errorf("invalid compiler %q in %s: %w", block.Key, filename, err)
		}
		if err := reg.add(block.Key, spec); err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		logger.Debug("Loaded compiler catalog.", "compiler", block.Key, "args", len(spec.Args()))
	}
	return nil
}

// translateCompiler converts a decoded compiler block into a ToolSpec.
func translateCompiler(block *compilerBlock) (*compiler.ToolSpec, error) {
	var diags hcl.Diagnostics
	args := make([]*compiler.ArgSpec, 0, len(block.Args))

	for _, a := range block.Args {
		arg, argDiags := translateArg(a)
		diags = append(diags, argDiags...)
		if arg != nil {
			args = append(args, arg)
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	return compiler.NewToolSpec(block.Name, block.Description, block.WorkingDir, args)
}

func translateArg(a *argBlock) (*compiler.ArgSpec, hcl.Diagnostics) {
	kind, diags := kindFromExpr(a.Type)
	if diags.HasErrors() {
		return nil, diags
	}

	arg := &compiler.ArgSpec{
		ID:          a.ID,
		Name:        a.Name,
		Token:       a.Token,
		Description: a.Description,
		Kind:        kind,
		Base:        a.Base,
	}
	if arg.Name == "" {
		arg.Name = a.ID
	}

	// A default must be a literal, so it is evaluated without a context.
	val, valDiags := a.Default.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return nil, diags
	}
	if !val.IsNull() {
		def, err := compiler.ValueFromCty(kind, val)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid default value type",
				Detail:   fmt.Sprintf("The default value for '%s' is not compatible with its type, '%s': %s.", a.ID, kind, err),
				Subject:  a.Default.Range().Ptr(),
			})
			return nil, diags
		}
		arg.Default = &def
	}

	if a.Games != nil {
		arg.Games = make([]uint32, 0, len(a.Games))
		for _, id := range a.Games {
			if id < 0 || int64(id) > math.MaxUint32 {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid game id",
					Detail:   fmt.Sprintf("Game id %d of '%s' is not a valid App ID.", id, a.ID),
				})
				return nil, diags
			}
			arg.Games = append(arg.Games, uint32(id))
		}
	}

	return arg, diags
}
