// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by *ParseError through errors.Is.
var (
	ErrUnknownArgument = errors.New("unknown argument")
	ErrMissingValue    = errors.New("missing value")
	ErrUnexpectedValue = errors.New("unexpected value")
	ErrInvalidValue    = errors.New("invalid value")
)

// ParseErrorKind classifies why an argument could not be parsed.
type ParseErrorKind int

const (
	// UnknownArgument: the flag is not in the tool's catalog.
	UnknownArgument ParseErrorKind = iota
	// MissingValue: the argument needs a value but none was given.
	MissingValue
	// UnexpectedValue: a flag was given a value.
	UnexpectedValue
	// InvalidValue: the value is not in the format the argument expects.
	InvalidValue
)

// ParseError is returned by ParseArg. Argument is the offending flag token;
// Value is only set for InvalidValue.
type ParseError struct {
	Kind     ParseErrorKind
	Argument string
	Value    string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownArgument:
		return fmt.Sprintf("unknown argument: %s", e.Argument)
	case MissingValue:
		return fmt.Sprintf("argument '%s' requires a value, but none was provided", e.Argument)
	case UnexpectedValue:
		return fmt.Sprintf("argument '%s' is a flag and does not accept a value", e.Argument)
	default:
		return fmt.Sprintf("invalid value '%s' for argument '%s'", e.Value, e.Argument)
	}
}

// Is lets errors.Is match a *ParseError against the sentinel of its kind.
func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case UnknownArgument:
		return target == ErrUnknownArgument
	case MissingValue:
		return target == ErrMissingValue
	case UnexpectedValue:
		return target == ErrUnexpectedValue
	default:
		return target == ErrInvalidValue
	}
}
