// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"fmt"
	"math"
	"slices"
)

// Tool is implemented by the zero-size marker type of each compiler tool.
// The marker is used as a type parameter so that every tool gets its own
// closed Arg and Compiler types.
type Tool interface {
	Spec() *ToolSpec
}

func specOf[T Tool]() *ToolSpec {
	var tool T
	return tool.Spec()
}

// Arg is one configured catalog entry of tool T. The zero Arg is not valid;
// use NewArg, MustArg or ParseArg.
type Arg[T Tool] struct {
	spec  *ArgSpec
	value Value
}

// StructuredArg is an argument formatted for the command line, before
// flattening: the flag token and its optional value token.
type StructuredArg struct {
	Token    string
	Value    string
	HasValue bool
}

// NewArg builds the entry id of tool T with the given payload. The payload
// kind must match the catalog entry.
func NewArg[T Tool](id string, v Value) (Arg[T], error) {
	spec, ok := specOf[T]().Arg(id)
	if !ok {
		return Arg[T]{}, fmt.Errorf("%s has no argument %q", specOf[T]().Name, id)
	}
	return argFromSpec[T](spec, v)
}

// MustArg is like NewArg but panics on error. It is meant for the typed
// constructors of the tool packages, where a failure is a programming error.
func MustArg[T Tool](id string, v Value) Arg[T] {
	arg, err := NewArg[T](id, v)
	if err != nil {
		panic(err)
	}
	return arg
}

func argFromSpec[T Tool](spec *ArgSpec, v Value) (Arg[T], error) {
	if v.Kind() != spec.Kind {
		return Arg[T]{}, fmt.Errorf("argument %q takes a %s value, got %s", spec.ID, spec.Kind, v.Kind())
	}
	if v.Kind() == KindFloat && !isFinite(v.Float()) {
		return Arg[T]{}, fmt.Errorf("argument %q takes a finite float value, got %v", spec.ID, v.Float())
	}
	return Arg[T]{spec: spec, value: v}, nil
}

// Variants returns one entry per catalog argument of T, in declaration order.
// Each entry carries its default payload, or the zero payload of its kind when
// the catalog has no default.
func Variants[T Tool]() []Arg[T] {
	specs := specOf[T]().Args()
	out := make([]Arg[T], 0, len(specs))
	for _, spec := range specs {
		out = append(out, canonical[T](spec))
	}
	return out
}

func isFinite(f float32) bool {
	return !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f))
}

func canonical[T Tool](spec *ArgSpec) Arg[T] {
	if spec.Default != nil {
		return Arg[T]{spec: spec, value: *spec.Default}
	}
	return Arg[T]{spec: spec, value: ZeroValue(spec.Kind)}
}

// Spec returns the catalog metadata of the entry.
func (a Arg[T]) Spec() *ArgSpec { return a.spec }

func (a Arg[T]) ID() string { return a.spec.ID }

// Name returns the human-readable name of the argument.
func (a Arg[T]) Name() string { return a.spec.Name }

// Description returns a detailed description of the argument's purpose.
func (a Arg[T]) Description() string { return a.spec.Description }

// Token returns the flag emitted on the command line, empty for positional
// arguments.
func (a Arg[T]) Token() string { return a.spec.Token }

func (a Arg[T]) ValueKind() ValueKind { return a.spec.Kind }

func (a Arg[T]) Value() Value { return a.value }

// DefaultValue returns the entry with its canonical payload. Flags are their
// own default.
func (a Arg[T]) DefaultValue() (Arg[T], bool) {
	if a.spec.Kind == KindFlag {
		return Arg[T]{spec: a.spec, value: FlagValue()}, true
	}
	if a.spec.Default == nil {
		return Arg[T]{}, false
	}
	return Arg[T]{spec: a.spec, value: *a.spec.Default}, true
}

// AsArg formats the entry into its flag token and optional value token.
func (a Arg[T]) AsArg() StructuredArg {
	value, ok := a.value.Format()
	return StructuredArg{Token: a.spec.Token, Value: value, HasValue: ok}
}

// IsDefault reports whether the argument is part of the tool's base set.
func (a Arg[T]) IsDefault() bool { return a.spec.Base }

// CompatibleGames returns the App IDs the argument is restricted to. The
// boolean is false when the argument works with every game.
func (a Arg[T]) CompatibleGames() ([]uint32, bool) {
	if a.spec.Games == nil {
		return nil, false
	}
	return slices.Clone(a.spec.Games), true
}

// IsCompatibleWithGame reports whether the argument can be used with appID.
func (a Arg[T]) IsCompatibleWithGame(appID uint32) bool {
	return a.spec.IsCompatibleWithGame(appID)
}

// String renders the entry the way ParseArg reads it back. ParseArg trims
// the text, so a string or path value that is empty or starts or ends with
// whitespace does not survive the round trip; use Entries and AddEntry to
// carry such values.
func (a Arg[T]) String() string {
	s := a.AsArg()
	switch {
	case !s.HasValue:
		return s.Token
	case s.Token == "":
		return s.Value
	default:
		return s.Token + " " + s.Value
	}
}
