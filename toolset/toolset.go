// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package toolset gives callers a single handle over compilers of any tool,
// so that a pipeline of VBSP, VVIS and VRAD can be held in one slice.
package toolset

import (
	"fmt"

	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/tools/bspzip"
	"github.com/specialistvlad/srcbuild/tools/vbsp"
	"github.com/specialistvlad/srcbuild/tools/vrad"
	"github.com/specialistvlad/srcbuild/tools/vvis"
)

// Engine is the tool-independent surface of a compiler. It is implemented by
// every *compiler.Compiler[T] and by Compiler itself.
type Engine interface {
	Spec() *compiler.ToolSpec
	Name() string
	Description() string
	WorkingDirTemplate() string
	Metadata() compiler.Metadata
	StructuredArgs() []compiler.StructuredArg
	BuildArgs() []string
	BuildCommand(ctx compiler.Context, opts ...compiler.BuildOption) compiler.CommandInfo
	ClearArgs()
	AddRaw(text string) error
	AddEntry(id string, v compiler.Value) error
	Entries() []compiler.Entry
}

var (
	_ Engine = (*vbsp.Compiler)(nil)
	_ Engine = (*vvis.Compiler)(nil)
	_ Engine = (*vrad.Compiler)(nil)
	_ Engine = (*bspzip.Compiler)(nil)
	_ Engine = Compiler{}
)

// Compiler wraps exactly one tool compiler and forwards every call to it.
// Copies share the wrapped compiler. The zero Compiler is not usable.
type Compiler struct {
	kind   Kind
	engine Engine
}

// New returns a compiler of the given kind without any arguments.
// It panics if kind is not one of the declared constants.
func New(kind Kind) Compiler {
	switch kind {
	case Vbsp:
		return FromVbsp(vbsp.New())
	case Vvis:
		return FromVvis(vvis.New())
	case Vrad:
		return FromVrad(vrad.New())
	case Bspzip:
		return FromBspzip(bspzip.New())
	default:
		panic(fmt.Sprintf("toolset: invalid kind %d", int(kind)))
	}
}

// Default returns a compiler of the given kind populated with the tool's base
// arguments.
func Default(kind Kind) Compiler {
	switch kind {
	case Vbsp:
		return FromVbsp(vbsp.Default())
	case Vvis:
		return FromVvis(vvis.Default())
	case Vrad:
		return FromVrad(vrad.Default())
	case Bspzip:
		return FromBspzip(bspzip.Default())
	default:
		panic(fmt.Sprintf("toolset: invalid kind %d", int(kind)))
	}
}

// Restore rebuilds a compiler of the given kind from its entries.
func Restore(kind Kind, entries []compiler.Entry) (Compiler, error) {
	switch kind {
	case Vbsp:
		c, err := compiler.Restore[vbsp.Tool](entries)
		if err != nil {
			return Compiler{}, fmt.Errorf("%s: %w", kind, err)
		}
		return FromVbsp(c), nil
	case Vvis:
		c, err := compiler.Restore[vvis.Tool](entries)
		if err != nil {
			return Compiler{}, fmt.Errorf("%s: %w", kind, err)
		}
		return FromVvis(c), nil
	case Vrad:
		c, err := compiler.Restore[vrad.Tool](entries)
		if err != nil {
			return Compiler{}, fmt.Errorf("%s: %w", kind, err)
		}
		return FromVrad(c), nil
	case Bspzip:
		c, err := compiler.Restore[bspzip.Tool](entries)
		if err != nil {
			return Compiler{}, fmt.Errorf("%s: %w", kind, err)
		}
		return FromBspzip(c), nil
	default:
		return Compiler{}, fmt.Errorf("invalid tool kind %d", int(kind))
	}
}

func FromVbsp(c *vbsp.Compiler) Compiler     { return Compiler{kind: Vbsp, engine: c} }
func FromVvis(c *vvis.Compiler) Compiler     { return Compiler{kind: Vvis, engine: c} }
func FromVrad(c *vrad.Compiler) Compiler     { return Compiler{kind: Vrad, engine: c} }
func FromBspzip(c *bspzip.Compiler) Compiler { return Compiler{kind: Bspzip, engine: c} }

// Kind reports which tool is wrapped.
func (c Compiler) Kind() Kind { return c.kind }

// Vbsp returns the wrapped VBSP compiler, if that is the active tool.
func (c Compiler) Vbsp() (*vbsp.Compiler, bool) {
	v, ok := c.engine.(*vbsp.Compiler)
	return v, ok
}

func (c Compiler) Vvis() (*vvis.Compiler, bool) {
	v, ok := c.engine.(*vvis.Compiler)
	return v, ok
}

func (c Compiler) Vrad() (*vrad.Compiler, bool) {
	v, ok := c.engine.(*vrad.Compiler)
	return v, ok
}

func (c Compiler) Bspzip() (*bspzip.Compiler, bool) {
	v, ok := c.engine.(*bspzip.Compiler)
	return v, ok
}

func (c Compiler) Spec() *compiler.ToolSpec    { return c.engine.Spec() }
func (c Compiler) Name() string                { return c.engine.Name() }
func (c Compiler) Description() string         { return c.engine.Description() }
func (c Compiler) WorkingDirTemplate() string  { return c.engine.WorkingDirTemplate() }
func (c Compiler) Metadata() compiler.Metadata { return c.engine.Metadata() }
func (c Compiler) BuildArgs() []string         { return c.engine.BuildArgs() }
func (c Compiler) ClearArgs()                  { c.engine.ClearArgs() }
func (c Compiler) AddRaw(text string) error    { return c.engine.AddRaw(text) }
func (c Compiler) Entries() []compiler.Entry   { return c.engine.Entries() }

func (c Compiler) StructuredArgs() []compiler.StructuredArg {
	return c.engine.StructuredArgs()
}

func (c Compiler) AddEntry(id string, v compiler.Value) error {
	return c.engine.AddEntry(id, v)
}

func (c Compiler) BuildCommand(ctx compiler.Context, opts ...compiler.BuildOption) compiler.CommandInfo {
	return c.engine.BuildCommand(ctx, opts...)
}

// BuildPipeline resolves every compiler against the same context, in order.
func BuildPipeline(ctx compiler.Context, compilers []Compiler, opts ...compiler.BuildOption) []compiler.CommandInfo {
	out := make([]compiler.CommandInfo, 0, len(compilers))
	for _, c := range compilers {
		out = append(out, c.BuildCommand(ctx, opts...))
	}
	return out
}
