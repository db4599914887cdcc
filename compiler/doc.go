// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package compiler is the generic engine shared by every level-compilation
// tool (VBSP, VVIS, VRAD, BSPZIP). It knows nothing about any particular tool;
// a tool plugs in by exposing a *ToolSpec, usually loaded from a declarative
// manifest.
//
// # Core Concepts
//
//   - Value: the payload an argument carries. A ValueKind is one of flag,
//     float, integer, string or path, and each kind has fixed rules for how it
//     is rendered on a command line and parsed back from text.
//
//   - Arg: one configured catalog entry for a tool. The type parameter ties
//     an Arg to the tool it belongs to, so arguments of one tool cannot be
//     added to a compiler of another tool.
//
//   - Compiler: the configured invocation. It owns a base list of arguments
//     fixed at construction and a user list that callers append to.
//
//   - Context: the runtime paths used to resolve `$placeholder` tokens such as
//     `$gameDir` or `$mapName` when the final command is built.
//
// # Building and Parsing
//
// Building is total: BuildArgs and BuildCommand never fail. Missing context
// values resolve to empty strings and unknown placeholders are kept verbatim.
//
// Parsing is the inverse of formatting a single argument: ParseArg turns
// "-micro 0.5" back into the typed entry, or returns a *ParseError describing
// why the text is not a valid argument for the tool.
package compiler
