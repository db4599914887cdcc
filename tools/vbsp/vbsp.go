// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package vbsp configures VBSP, the compiler that turns a .vmf source map
// into a .bsp.
package vbsp

import (
	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/internal/catalog"
)

// Key is the catalog key of the tool.
const Key = "vbsp"

// Tool is the type parameter that binds the generic compiler to VBSP.
type Tool struct{}

// Spec returns the VBSP catalog.
func (Tool) Spec() *compiler.ToolSpec { return catalog.Builtin().MustTool(Key) }

type (
	Compiler = compiler.Compiler[Tool]
	Arg      = compiler.Arg[Tool]
)

// New returns a VBSP compiler without any arguments.
func New() *Compiler { return compiler.New[Tool]() }

// Default returns a VBSP compiler that starts with "-game $gameDir $mapPath".
func Default() *Compiler { return compiler.Default[Tool]() }

// Parse reads a single "<flag>[ <value>]" argument.
func Parse(text string) (Arg, error) { return compiler.ParseArg[Tool](text) }

// Variants lists every VBSP argument with its canonical payload.
func Variants() []Arg { return compiler.Variants[Tool]() }

func flag(id string) Arg { return compiler.MustArg[Tool](id, compiler.FlagValue()) }

func GameDirectory(dir string) Arg {
	return compiler.MustArg[Tool]("GameDirectory", compiler.PathValue(dir))
}

// MapFile is the positional .vmf argument.
func MapFile(path string) Arg {
	return compiler.MustArg[Tool]("MapFile", compiler.PathValue(path))
}

func Verbose() Arg            { return flag("Verbose") }
func OnlyEntities() Arg       { return flag("OnlyEntities") }
func OnlyProps() Arg          { return flag("OnlyProps") }
func NoWater() Arg            { return flag("NoWater") }
func NoDetail() Arg           { return flag("NoDetail") }
func FullDetail() Arg         { return flag("FullDetail") }
func LeakTest() Arg           { return flag("LeakTest") }
func Low() Arg                { return flag("Low") }
func NoVConfig() Arg          { return flag("NoVConfig") }
func GlView() Arg             { return flag("GlView") }
func NoJunctionFix() Arg      { return flag("NoJunctionFix") }
func NoWeld() Arg             { return flag("NoWeld") }
func NoCsg() Arg              { return flag("NoCsg") }
func NoShare() Arg            { return flag("NoShare") }
func NoSubdivide() Arg        { return flag("NoSubdivide") }
func NoOptimize() Arg         { return flag("NoOptimize") }
func NoLinearOptimize() Arg   { return flag("NoLinearOptimize") }
func NoDefaultCubemap() Arg   { return flag("NoDefaultCubemap") }
func NoDrawTriggers() Arg     { return flag("NoDrawTriggers") }
func NoPrune() Arg            { return flag("NoPrune") }
func KeepStaleZip() Arg       { return flag("KeepStaleZip") }
func BumpAll() Arg            { return flag("BumpAll") }
func SnapAxial() Arg          { return flag("SnapAxial") }
func DumpStaticProps() Arg    { return flag("DumpStaticProps") }
func DumpCollide() Arg        { return flag("DumpCollide") }
func LightIfMissing() Arg     { return flag("LightIfMissing") }
func VirtualDispPhysics() Arg { return flag("VirtualDispPhysics") }

// MicroVolumeTest reports brushes smaller than volume. The default is 1.
func MicroVolumeTest(volume float32) Arg {
	return compiler.MustArg[Tool]("MicroVolumeTest", compiler.FloatValue(volume))
}

func Threads(n int64) Arg {
	return compiler.MustArg[Tool]("Threads", compiler.IntValue(n))
}

func LuxelScale(scale float32) Arg {
	return compiler.MustArg[Tool]("LuxelScale", compiler.FloatValue(scale))
}

// Embed packs the contents of dir into the map.
func Embed(dir string) Arg {
	return compiler.MustArg[Tool]("Embed", compiler.PathValue(dir))
}

func StaticPropCombine() Arg            { return flag("StaticPropCombine") }
func StaticPropCombineConsiderVis() Arg { return flag("StaticPropCombineConsiderVis") }
func StaticPropCombineAutoCombine() Arg { return flag("StaticPropCombineAutoCombine") }

// StaticPropCombineMinInstances sets how often a prop must occur before it is
// combined. The default is 3.
func StaticPropCombineMinInstances(n int64) Arg {
	return compiler.MustArg[Tool]("StaticPropCombineMinInstances", compiler.IntValue(n))
}

// AllowDynamicPropsAsStatic is only understood by the Garry's Mod build.
func AllowDynamicPropsAsStatic() Arg { return flag("AllowDynamicPropsAsStatic") }
