// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package bspzip configures BSPZIP, the tool that edits the pakfile embedded
// in a compiled map.
package bspzip

import (
	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/internal/catalog"
)

const Key = "bspzip"

type Tool struct{}

func (Tool) Spec() *compiler.ToolSpec { return catalog.Builtin().MustTool(Key) }

type (
	Compiler = compiler.Compiler[Tool]
	Arg      = compiler.Arg[Tool]
)

func New() *Compiler { return compiler.New[Tool]() }

// Default returns a BSPZIP compiler that starts with "-game $gameDir $bspPath".
func Default() *Compiler { return compiler.Default[Tool]() }

func Parse(text string) (Arg, error) { return compiler.ParseArg[Tool](text) }

func Variants() []Arg { return compiler.Variants[Tool]() }

func path(id, p string) Arg { return compiler.MustArg[Tool](id, compiler.PathValue(p)) }

func GameDirectory(dir string) Arg { return path("GameDirectory", dir) }
func BspFile(p string) Arg         { return path("BspFile", p) }

// PackFileList adds every file named in the list file to the pakfile.
func PackFileList(list string) Arg { return path("PackFileList", list) }

func UpdateFileList(list string) Arg { return path("UpdateFileList", list) }
func ExtractFiles(dir string) Arg    { return path("ExtractFiles", dir) }
func Extract(zip string) Arg         { return path("Extract", zip) }
func Dir(bsp string) Arg             { return path("Dir", bsp) }

func Repack() Arg   { return compiler.MustArg[Tool]("Repack", compiler.FlagValue()) }
func Compress() Arg { return compiler.MustArg[Tool]("Compress", compiler.FlagValue()) }
