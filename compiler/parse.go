// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"strings"
	"unicode"
)

// ParseArg parses "<flag>[ <value>]" into an entry of tool T. The text is
// split at the first run of whitespace; everything after it is the value,
// kept verbatim, so path values may contain spaces.
//
// Failures are always a *ParseError.
func ParseArg[T Tool](text string) (Arg[T], error) {
	token, value, hasValue := splitArg(text)

	spec, ok := specOf[T]().Lookup(token)
	if !ok {
		return Arg[T]{}, &ParseError{Kind: UnknownArgument, Argument: token}
	}

	if spec.Kind == KindFlag {
		if hasValue {
			return Arg[T]{}, &ParseError{Kind: UnexpectedValue, Argument: spec.Token}
		}
		return Arg[T]{spec: spec, value: FlagValue()}, nil
	}

	if !hasValue {
		return Arg[T]{}, &ParseError{Kind: MissingValue, Argument: spec.Token}
	}
	v, err := ParseValue(spec.Kind, value)
	if err != nil {
		return Arg[T]{}, &ParseError{Kind: InvalidValue, Argument: spec.Token, Value: value}
	}
	return Arg[T]{spec: spec, value: v}, nil
}

// ParseArgs parses each text with ParseArg and stops at the first error.
func ParseArgs[T Tool](texts ...string) ([]Arg[T], error) {
	out := make([]Arg[T], 0, len(texts))
	for _, text := range texts {
		arg, err := ParseArg[T](text)
		if err != nil {
			return nil, err
		}
		out = append(out, arg)
	}
	return out, nil
}

func splitArg(text string) (token, value string, hasValue bool) {
	text = strings.TrimSpace(text)
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, "", false
	}
	return text[:i], strings.TrimLeftFunc(text[i:], unicode.IsSpace), true
}
