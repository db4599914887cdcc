// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package vvis configures VVIS, the visibility compiler run on a .bsp after
// VBSP.
package vvis

import (
	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/internal/catalog"
)

const Key = "vvis"

type Tool struct{}

func (Tool) Spec() *compiler.ToolSpec { return catalog.Builtin().MustTool(Key) }

type (
	Compiler = compiler.Compiler[Tool]
	Arg      = compiler.Arg[Tool]
)

func New() *Compiler { return compiler.New[Tool]() }

// Default returns a VVIS compiler that starts with "-game $gameDir $bspPath".
func Default() *Compiler { return compiler.Default[Tool]() }

func Parse(text string) (Arg, error) { return compiler.ParseArg[Tool](text) }

func Variants() []Arg { return compiler.Variants[Tool]() }

func flag(id string) Arg { return compiler.MustArg[Tool](id, compiler.FlagValue()) }

func GameDirectory(dir string) Arg {
	return compiler.MustArg[Tool]("GameDirectory", compiler.PathValue(dir))
}

func BspFile(path string) Arg {
	return compiler.MustArg[Tool]("BspFile", compiler.PathValue(path))
}

func Fast() Arg            { return flag("Fast") }
func Verbose() Arg         { return flag("Verbose") }
func NoSort() Arg          { return flag("NoSort") }
func TmpIn() Arg           { return flag("TmpIn") }
func TmpOut() Arg          { return flag("TmpOut") }
func Low() Arg             { return flag("Low") }
func NoVConfig() Arg       { return flag("NoVConfig") }
func NoSkyboxRecurse() Arg { return flag("NoSkyboxRecurse") }

// RadiusOverride forces the vis radius in world units.
func RadiusOverride(radius int64) Arg {
	return compiler.MustArg[Tool]("RadiusOverride", compiler.IntValue(radius))
}

func Threads(n int64) Arg {
	return compiler.MustArg[Tool]("Threads", compiler.IntValue(n))
}
