// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package vrad configures VRAD, the radiosity lighting compiler.
package vrad

import (
	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/internal/catalog"
)

const Key = "vrad"

type Tool struct{}

func (Tool) Spec() *compiler.ToolSpec { return catalog.Builtin().MustTool(Key) }

type (
	Compiler = compiler.Compiler[Tool]
	Arg      = compiler.Arg[Tool]
)

func New() *Compiler { return compiler.New[Tool]() }

// Default returns a VRAD compiler that starts with "-game $gameDir $bspPath".
func Default() *Compiler { return compiler.Default[Tool]() }

func Parse(text string) (Arg, error) { return compiler.ParseArg[Tool](text) }

func Variants() []Arg { return compiler.Variants[Tool]() }

func flag(id string) Arg { return compiler.MustArg[Tool](id, compiler.FlagValue()) }

func float(id string, f float32) Arg {
	return compiler.MustArg[Tool](id, compiler.FloatValue(f))
}

func integer(id string, i int64) Arg {
	return compiler.MustArg[Tool](id, compiler.IntValue(i))
}

func GameDirectory(dir string) Arg {
	return compiler.MustArg[Tool]("GameDirectory", compiler.PathValue(dir))
}

func BspFile(path string) Arg {
	return compiler.MustArg[Tool]("BspFile", compiler.PathValue(path))
}

// Lights loads an extra lights.rad style file.
func Lights(path string) Arg {
	return compiler.MustArg[Tool]("Lights", compiler.PathValue(path))
}

func Fast() Arg                { return flag("Fast") }
func Final() Arg               { return flag("Final") }
func Ldr() Arg                 { return flag("Ldr") }
func Hdr() Arg                 { return flag("Hdr") }
func Both() Arg                { return flag("Both") }
func Verbose() Arg             { return flag("Verbose") }
func StaticPropLighting() Arg  { return flag("StaticPropLighting") }
func StaticPropPolys() Arg     { return flag("StaticPropPolys") }
func TextureShadows() Arg      { return flag("TextureShadows") }
func NoExtra() Arg             { return flag("NoExtra") }
func CenterSamples() Arg       { return flag("CenterSamples") }
func Dump() Arg                { return flag("Dump") }
func Low() Arg                 { return flag("Low") }
func NoVConfig() Arg           { return flag("NoVConfig") }
func NoSkyboxRecurse() Arg     { return flag("NoSkyboxRecurse") }
func WorldTextureShadows() Arg { return flag("WorldTextureShadows") }

func Bounce(n int64) Arg           { return integer("Bounce", n) }
func ExtraSky(n int64) Arg         { return integer("ExtraSky", n) }
func CompressConstant(n int64) Arg { return integer("CompressConstant", n) }
func Threads(n int64) Arg          { return integer("Threads", n) }

func Smooth(degrees float32) Arg          { return float("Smooth", degrees) }
func LuxelDensity(d float32) Arg          { return float("LuxelDensity", d) }
func SoftSun(size float32) Arg            { return float("SoftSun", size) }
func Chop(n float32) Arg                  { return float("Chop", n) }
func MaxChop(n float32) Arg               { return float("MaxChop", n) }
func DispChop(n float32) Arg              { return float("DispChop", n) }
func StaticPropSampleScale(s float32) Arg { return float("StaticPropSampleScale", s) }
