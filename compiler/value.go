// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind defines the type of value an argument can hold.
type ValueKind int

const (
	// KindFlag arguments carry no value; their presence is the value.
	KindFlag ValueKind = iota
	KindFloat
	KindInteger
	KindString
	KindPath
)

var kindNames = [...]string{
	KindFlag:    "flag",
	KindFloat:   "float",
	KindInteger: "integer",
	KindString:  "string",
	KindPath:    "path",
}

// String returns the manifest keyword for the kind.
func (k ValueKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseValueKind maps a manifest keyword such as "float" to its ValueKind.
func ParseValueKind(s string) (ValueKind, bool) {
	for k, name := range kindNames {
		if name == s {
			return ValueKind(k), true
		}
	}
	return 0, false
}

// Value is the payload of a single argument. Only the field matching Kind is
// meaningful, which keeps Value comparable with ==.
type Value struct {
	kind ValueKind
	f    float32
	i    int64
	s    string
}

// FlagValue returns the payload of a flag argument.
func FlagValue() Value { return Value{kind: KindFlag} }

// FloatValue returns a float payload. NewArg rejects infinities and NaN,
// which have no decimal command-line form.
func FloatValue(f float32) Value { return Value{kind: KindFloat, f: f} }

// IntValue returns an integer payload.
func IntValue(i int64) Value { return Value{kind: KindInteger, i: i} }

// StringValue returns a text payload.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// PathValue returns a filesystem path payload. The path is kept exactly as
// given; it is not cleaned or made absolute.
func PathValue(p string) Value { return Value{kind: KindPath, s: p} }

// ZeroValue returns the zero payload of the given kind.
func ZeroValue(kind ValueKind) Value { return Value{kind: kind} }

func (v Value) Kind() ValueKind { return v.kind }

// Float returns the payload of a float value.
func (v Value) Float() float32 { return v.f }

// Int returns the payload of an integer value.
func (v Value) Int() int64 { return v.i }

// Text returns the payload of a string or path value.
func (v Value) Text() string { return v.s }

// Format renders the value as a single command-line token. The boolean is
// false for flags, which never emit a value token.
func (v Value) Format() (string, bool) {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(float64(v.f), 'f', -1, 32), true
	case KindInteger:
		return strconv.FormatInt(v.i, 10), true
	case KindString, KindPath:
		return v.s, true
	default:
		return "", false
	}
}

// String implements fmt.Stringer. Flags render as an empty string.
func (v Value) String() string {
	s, _ := v.Format()
	return s
}

var errNotDecimal = errors.New("not a base-10 number")

// ParseValue parses raw text into a payload of the given kind. String and
// path kinds accept any text. Flags accept nothing, so callers are expected
// to handle them before calling ParseValue.
func ParseValue(kind ValueKind, raw string) (Value, error) {
	switch kind {
	case KindFloat:
		if !isDecimalLiteral(raw, true) {
			return Value{}, fmt.Errorf("parse float %q: %w", raw, errNotDecimal)
		}
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return Value{}, fmt.Errorf("parse float %q: %w", raw, err)
		}
		return FloatValue(float32(f)), nil
	case KindInteger:
		if !isDecimalLiteral(raw, false) {
			return Value{}, fmt.Errorf("parse integer %q: %w", raw, errNotDecimal)
		}
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse integer %q: %w", raw, err)
		}
		return IntValue(i), nil
	case KindString:
		return StringValue(raw), nil
	case KindPath:
		return PathValue(raw), nil
	default:
		return Value{}, fmt.Errorf("kind %s does not take a value", kind)
	}
}

// isDecimalLiteral reports whether s is an optionally signed base-10 number.
// strconv accepts more than that (hex floats, underscores, "inf", "nan"),
// none of which the compilers understand.
func isDecimalLiteral(s string, fraction bool) bool {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	digits, dot, exp := 0, false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && fraction && !dot && !exp:
			dot = true
		case (c == 'e' || c == 'E') && fraction && !exp && digits > 0:
			exp = true
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				i++
			}
			if i+1 >= len(s) {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}
