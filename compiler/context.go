// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"os"
	"strings"
)

// BspExt is the extension of the compiled map next to its source file.
const BspExt = ".bsp"

// Context holds the concrete values for placeholders used in compiler
// arguments. Build it with NewContext so the derived fields are filled in;
// it is never modified afterwards and can be shared freely.
type Context struct {
	BinDir  string
	GameDir string
	MapPath string
	OutDir  string

	// Derived from MapPath.
	MapDir     string // directory containing the map
	MapName    string // file name without extension, e.g. "de_dust2"
	MapNameExt string // file name with extension, e.g. "de_dust2.vmf"
	MapExt     string // extension without the dot, e.g. "vmf"
	BspPath    string // MapPath with its extension replaced by .bsp
}

// NewContext derives the map-related values from mapPath. An empty outDir
// defaults to the directory of the map.
func NewContext(binDir, gameDir, mapPath, outDir string) Context {
	ctx := Context{
		BinDir:  binDir,
		GameDir: gameDir,
		MapPath: mapPath,
		MapDir:  parentDir(mapPath),
	}
	ctx.MapNameExt = fileName(mapPath)
	ctx.MapName, ctx.MapExt = splitExt(ctx.MapNameExt)
	if ctx.MapNameExt != "" {
		dir := strings.TrimSuffix(strings.TrimRight(mapPath, string(os.PathSeparator)), ctx.MapNameExt)
		ctx.BspPath = dir + ctx.MapName + BspExt
	}

	ctx.OutDir = outDir
	if ctx.OutDir == "" {
		ctx.OutDir = ctx.MapDir
	}
	return ctx
}

// parentDir returns the directory part of p, or "" when p has none.
// Unlike filepath.Dir, a bare file name has no parent rather than ".".
func parentDir(p string) string {
	trimmed := strings.TrimRight(p, string(os.PathSeparator))
	if trimmed == "" {
		return ""
	}
	i := strings.LastIndexByte(trimmed, os.PathSeparator)
	if i < 0 {
		return ""
	}
	if dir := strings.TrimRight(trimmed[:i], string(os.PathSeparator)); dir != "" {
		return dir
	}
	return string(os.PathSeparator)
}

func fileName(p string) string {
	trimmed := strings.TrimRight(p, string(os.PathSeparator))
	name := trimmed[strings.LastIndexByte(trimmed, os.PathSeparator)+1:]
	if name == "." || name == ".." {
		return ""
	}
	return name
}

// splitExt splits a file name into stem and extension. A leading dot does not
// start an extension, so ".gitignore" has no extension.
func splitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

type placeholder struct {
	key     string
	resolve func(*Context) string
}

// placeholders is tried in order at every '$'. A key must come before any
// other key that is its prefix, so mapNameExt precedes mapName.
var placeholders = []placeholder{
	{"binDir", func(c *Context) string { return c.BinDir }},
	{"gameDir", func(c *Context) string { return c.GameDir }},
	{"mapPath", func(c *Context) string { return c.MapPath }},
	{"outDir", func(c *Context) string { return c.OutDir }},
	{"mapDir", func(c *Context) string { return c.MapDir }},
	{"mapNameExt", func(c *Context) string { return c.MapNameExt }},
	{"mapName", func(c *Context) string { return c.MapName }},
	{"mapExt", func(c *Context) string { return c.MapExt }},
	{"bspPath", func(c *Context) string { return c.BspPath }},
	// aliases
	{"file", func(c *Context) string { return c.MapName }},
	{"path", func(c *Context) string { return c.MapPath }},
}

// Placeholders returns the recognised placeholder keys in matching order.
func Placeholders() []string {
	keys := make([]string, len(placeholders))
	for i, p := range placeholders {
		keys[i] = p.key
	}
	return keys
}

// Replace substitutes every known $placeholder in input in a single
// left-to-right pass. Substituted text is never scanned again, and a '$' not
// followed by a known key is copied as is.
func (c Context) Replace(input string) string {
	if strings.IndexByte(input, '$') < 0 {
		return input
	}

	var out strings.Builder
	out.Grow(len(input) + 32)

	rest := input
	for {
		i := strings.IndexByte(rest, '$')
		if i < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:i])
		rest = rest[i+1:]

		matched := false
		for _, p := range placeholders {
			if strings.HasPrefix(rest, p.key) {
				out.WriteString(p.resolve(&c))
				rest = rest[len(p.key):]
				matched = true
				break
			}
		}
		if !matched {
			out.WriteByte('$')
		}
	}
	return out.String()
}
