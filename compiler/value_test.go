// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestValueKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []ValueKind{KindFlag, KindFloat, KindInteger, KindString, KindPath} {
		parsed, ok := ParseValueKind(kind.String())
		require.True(t, ok, kind.String())
		require.Equal(t, kind, parsed)
	}

	_, ok := ParseValueKind("number")
	require.False(t, ok)
	require.Equal(t, "ValueKind(9)", ValueKind(9).String())
}

func TestValue_Format(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		value  Value
		want   string
		hasVal bool
	}{
		{name: "flag", value: FlagValue(), want: "", hasVal: false},
		{name: "whole float", value: FloatValue(1), want: "1", hasVal: true},
		{name: "fraction", value: FloatValue(0.5), want: "0.5", hasVal: true},
		{name: "shortest float32", value: FloatValue(0.1), want: "0.1", hasVal: true},
		{name: "negative float", value: FloatValue(-0.1), want: "-0.1", hasVal: true},
		{name: "large float", value: FloatValue(1e10), want: "10000000000", hasVal: true},
		{name: "integer", value: IntValue(42), want: "42", hasVal: true},
		{name: "negative integer", value: IntValue(-5), want: "-5", hasVal: true},
		{name: "string", value: StringValue("hello world"), want: "hello world", hasVal: true},
		{name: "empty path", value: PathValue(""), want: "", hasVal: true},
		{name: "windows path", value: PathValue(`C:\Program Files\x.vmf`), want: `C:\Program Files\x.vmf`, hasVal: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tc.value.Format()
			require.Equal(t, tc.hasVal, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind    ValueKind
		raw     string
		want    Value
		wantErr bool
	}{
		{kind: KindFloat, raw: "0.5", want: FloatValue(0.5)},
		{kind: KindFloat, raw: "-0.1", want: FloatValue(-0.1)},
		{kind: KindFloat, raw: "+2", want: FloatValue(2)},
		{kind: KindFloat, raw: "1e3", want: FloatValue(1000)},
		{kind: KindFloat, raw: ".5", want: FloatValue(0.5)},
		{kind: KindFloat, raw: "5.", want: FloatValue(5)},
		{kind: KindFloat, raw: "not_a_float", wantErr: true},
		{kind: KindFloat, raw: "0x1p-2", wantErr: true},
		{kind: KindFloat, raw: "inf", wantErr: true},
		{kind: KindFloat, raw: "NaN", wantErr: true},
		{kind: KindFloat, raw: "1_000", wantErr: true},
		{kind: KindFloat, raw: "1e", wantErr: true},
		{kind: KindFloat, raw: ".", wantErr: true},
		{kind: KindFloat, raw: "1e39", wantErr: true},
		{kind: KindInteger, raw: "42", want: IntValue(42)},
		{kind: KindInteger, raw: "-5", want: IntValue(-5)},
		{kind: KindInteger, raw: "+7", want: IntValue(7)},
		{kind: KindInteger, raw: "8.5", wantErr: true},
		{kind: KindInteger, raw: "0x10", wantErr: true},
		{kind: KindInteger, raw: "-", wantErr: true},
		{kind: KindInteger, raw: "99999999999999999999", wantErr: true},
		{kind: KindString, raw: "any text at all", want: StringValue("any text at all")},
		{kind: KindPath, raw: `D:\Maps For Game\level_01.vmf`, want: PathValue(`D:\Maps For Game\level_01.vmf`)},
		{kind: KindFlag, raw: "x", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String()+"/"+tc.raw, func(t *testing.T) {
			t.Parallel()
			got, err := ParseValue(tc.kind, tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValue_FormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	values := []Value{
		FloatValue(0.1), FloatValue(-123.456), FloatValue(3.4028235e38), FloatValue(1.0e-7),
		IntValue(0), IntValue(-9223372036854775808), IntValue(9223372036854775807),
	}
	for _, v := range values {
		s, ok := v.Format()
		require.True(t, ok)
		parsed, err := ParseValue(v.Kind(), s)
		require.NoError(t, err, s)
		require.Equal(t, v, parsed, s)
	}
}

func TestValueFromCty(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		kind    ValueKind
		in      cty.Value
		want    Value
		wantErr string
	}{
		{name: "flag null", kind: KindFlag, in: cty.NullVal(cty.DynamicPseudoType), want: FlagValue()},
		{name: "flag with value", kind: KindFlag, in: cty.True, wantErr: "do not take a value"},
		{name: "float", kind: KindFloat, in: cty.NumberFloatVal(0.25), want: FloatValue(0.25)},
		{name: "integer", kind: KindInteger, in: cty.NumberIntVal(-3), want: IntValue(-3)},
		{name: "fractional integer", kind: KindInteger, in: cty.NumberFloatVal(1.5), wantErr: "whole number"},
		{name: "string", kind: KindString, in: cty.StringVal("x"), want: StringValue("x")},
		{name: "path", kind: KindPath, in: cty.StringVal("$gameDir"), want: PathValue("$gameDir")},
		{name: "number for path", kind: KindPath, in: cty.NumberIntVal(1), wantErr: "expected a string literal"},
		{name: "null path", kind: KindPath, in: cty.NullVal(cty.String), wantErr: "a path value is required"},
		{name: "unknown", kind: KindString, in: cty.UnknownVal(cty.String), wantErr: "must be a literal"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ValueFromCty(tc.kind, tc.in)
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValue_CtyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []Value{FloatValue(0.1), IntValue(-7), StringValue("a b"), PathValue(`C:\x`)} {
		back, err := ValueFromCty(v.Kind(), v.Cty())
		require.NoError(t, err)
		require.Equal(t, v, back)
	}
	require.True(t, FlagValue().Cty().IsNull())
}
