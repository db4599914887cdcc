// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// ExecutableExt is appended to the lower-cased tool name when no executable
// is given to BuildCommand.
const ExecutableExt = ".exe"

// Compiler is a configured invocation of tool T. It owns two ordered lists:
// base arguments fixed at construction and user arguments added later.
// A Compiler is not safe for concurrent mutation.
type Compiler[T Tool] struct {
	spec *ToolSpec
	base []Arg[T]
	user []Arg[T]
}

// New returns a compiler without any arguments.
func New[T Tool]() *Compiler[T] {
	return &Compiler[T]{spec: specOf[T]()}
}

// Default returns a compiler whose base list holds the catalog's base
// arguments with their default payloads, e.g. "-game $gameDir" for VBSP.
func Default[T Tool]() *Compiler[T] {
	c := New[T]()
	for _, spec := range c.spec.BaseArgs() {
		arg, _ := Arg[T]{spec: spec}.DefaultValue()
		c.base = append(c.base, arg)
	}
	return c
}

// Metadata bundles the static description of a tool.
type Metadata struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	WorkingDirTemplate string `json:"working_dir_template"`
}

// CommandInfo is a fully resolved command, ready to hand to a process
// launcher without further transformation.
type CommandInfo struct {
	Name string `json:"name"`
	// CompilerPath is the path to the compiler executable.
	CompilerPath string   `json:"compiler_path"`
	Args         []string `json:"args"`
	WorkingDir   string   `json:"working_dir"`
}

// Spec returns the catalog of the tool.
func (c *Compiler[T]) Spec() *ToolSpec { return c.spec }

// Name returns the human-readable name of the compiler, e.g. "VBSP".
func (c *Compiler[T]) Name() string { return c.spec.Name }

func (c *Compiler[T]) Description() string { return c.spec.Description }

// WorkingDirTemplate returns the unresolved working directory.
func (c *Compiler[T]) WorkingDirTemplate() string { return c.spec.WorkingDir }

func (c *Compiler[T]) Metadata() Metadata {
	return Metadata{
		Name:               c.spec.Name,
		Description:        c.spec.Description,
		WorkingDirTemplate: c.spec.WorkingDir,
	}
}

// Args returns the base arguments followed by the user arguments. The slice
// is a copy.
func (c *Compiler[T]) Args() []Arg[T] {
	return slices.Concat(c.base, c.user)
}

// AddArg appends a user argument. Arguments are never merged: adding a token
// that is already present, even in the base list, emits it twice.
func (c *Compiler[T]) AddArg(args ...Arg[T]) {
	c.user = append(c.user, args...)
}

// ClearArgs removes all user arguments. Base arguments are unaffected.
func (c *Compiler[T]) ClearArgs() {
	c.user = nil
}

// StructuredArgs returns every argument formatted but not yet flattened.
func (c *Compiler[T]) StructuredArgs() []StructuredArg {
	args := c.Args()
	out := make([]StructuredArg, 0, len(args))
	for _, arg := range args {
		out = append(out, arg.AsArg())
	}
	return out
}

// BuildArgs flattens the arguments into command-line tokens: the flag token
// when it is not empty, then the value when there is one.
func (c *Compiler[T]) BuildArgs() []string {
	structured := c.StructuredArgs()
	out := make([]string, 0, len(structured)*2)
	for _, arg := range structured {
		if arg.Token != "" {
			out = append(out, arg.Token)
		}
		if arg.HasValue {
			out = append(out, arg.Value)
		}
	}
	return out
}

// BuildOption customises BuildCommand.
type BuildOption func(*buildOptions)

type buildOptions struct {
	executable    string
	hasExecutable bool
}

// WithExecutable sets the compiler path instead of deriving it from the
// context's BinDir. The path is used as given, even when empty.
func WithExecutable(path string) BuildOption {
	return func(o *buildOptions) {
		o.executable = path
		o.hasExecutable = true
	}
}

// BuildCommand resolves all placeholders against ctx and returns the final
// command. Without WithExecutable the compiler path is
// <BinDir>/<lower-case name>.exe. BuildCommand never fails.
func (c *Compiler[T]) BuildCommand(ctx Context, opts ...BuildOption) CommandInfo {
	return buildCommand(c.spec, c.BuildArgs(), ctx, opts)
}

func buildCommand(spec *ToolSpec, args []string, ctx Context, opts []BuildOption) CommandInfo {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	resolved := make([]string, len(args))
	for i, arg := range args {
		resolved[i] = ctx.Replace(arg)
	}

	executable := o.executable
	if !o.hasExecutable {
		executable = joinPath(ctx.BinDir, strings.ToLower(spec.Name)+ExecutableExt)
	}

	return CommandInfo{
		Name:         spec.Name,
		CompilerPath: executable,
		Args:         resolved,
		WorkingDir:   ctx.Replace(spec.WorkingDir),
	}
}

// joinPath appends name to dir without cleaning dir, so "a/../b" stays as
// the caller wrote it.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}

// Entry is a tool-agnostic view of one configured argument, used to move a
// compiler's state across package boundaries without its type parameter.
type Entry struct {
	ID    string
	Value Value
	Base  bool
}

// Entries returns the base and user arguments in order.
func (c *Compiler[T]) Entries() []Entry {
	out := make([]Entry, 0, len(c.base)+len(c.user))
	for _, arg := range c.base {
		out = append(out, Entry{ID: arg.spec.ID, Value: arg.value, Base: true})
	}
	for _, arg := range c.user {
		out = append(out, Entry{ID: arg.spec.ID, Value: arg.value})
	}
	return out
}

// AddEntry appends the user argument id with payload v.
func (c *Compiler[T]) AddEntry(id string, v Value) error {
	arg, err := NewArg[T](id, v)
	if err != nil {
		return err
	}
	c.AddArg(arg)
	return nil
}

// AddRaw parses text with ParseArg and appends the result.
func (c *Compiler[T]) AddRaw(text string) error {
	arg, err := ParseArg[T](text)
	if err != nil {
		return err
	}
	c.AddArg(arg)
	return nil
}

// Restore rebuilds a compiler from entries previously returned by Entries.
// Base entries may appear anywhere; they keep their relative order.
func Restore[T Tool](entries []Entry) (*Compiler[T], error) {
	c := New[T]()
	for i, e := range entries {
		arg, err := NewArg[T](e.ID, e.Value)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if e.Base {
			c.base = append(c.base, arg)
		} else {
			c.user = append(c.user, arg)
		}
	}
	return c, nil
}
