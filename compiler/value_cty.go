// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// CtyType returns the cty type that literals of the given kind must have in
// manifests and profiles. Flags have no literal form and return cty.NilType.
func CtyType(kind ValueKind) cty.Type {
	switch kind {
	case KindFloat, KindInteger:
		return cty.Number
	case KindString, KindPath:
		return cty.String
	default:
		return cty.NilType
	}
}

// ValueFromCty converts an HCL literal into a payload of the given kind.
// A null literal is only accepted for flags.
func ValueFromCty(kind ValueKind, v cty.Value) (Value, error) {
	if v.IsNull() {
		if kind == KindFlag {
			return FlagValue(), nil
		}
		return Value{}, fmt.Errorf("a %s value is required", kind)
	}
	if kind == KindFlag {
		return Value{}, errors.New("flag arguments do not take a value")
	}
	if !v.IsWhollyKnown() {
		return Value{}, errors.New("value must be a literal")
	}

	want := CtyType(kind)
	if !v.Type().Equals(want) {
		return Value{}, fmt.Errorf("expected a %s literal for a %s value, got %s", want.FriendlyName(), kind, v.Type().FriendlyName())
	}

	switch kind {
	case KindFloat:
		var f float32
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	case KindInteger:
		var i int64
		if err := gocty.FromCtyValue(v, &i); err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	default:
		var s string
		if err := gocty.FromCtyValue(v, &s); err != nil {
			return Value{}, err
		}
		return Value{kind: kind, s: s}, nil
	}
}

// Cty returns the HCL literal for the value. Floats go through their decimal
// rendering so that 0.1 is written as 0.1 and not as its float64 widening.
func (v Value) Cty() cty.Value {
	switch v.kind {
	case KindFloat:
		s, _ := v.Format()
		return cty.MustParseNumberVal(s)
	case KindInteger:
		return cty.NumberIntVal(v.i)
	case KindString, KindPath:
		return cty.StringVal(v.s)
	default:
		return cty.NullVal(cty.DynamicPseudoType)
	}
}
