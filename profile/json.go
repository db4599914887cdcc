// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package profile

import (
	"encoding/json"
	"fmt"

	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/toolset"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

type jsonProfile struct {
	ID        string         `json:"id"`
	Compilers []jsonCompiler `json:"compilers"`
}

type jsonCompiler struct {
	Tool string    `json:"tool"`
	Args []jsonArg `json:"args"`
}

type jsonArg struct {
	ID    string          `json:"id"`
	Base  bool            `json:"base,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// EncodeJSON renders the profile as an indented JSON document.
func (p *Profile) EncodeJSON() ([]byte, error) {
	doc := jsonProfile{ID: p.ID.String(), Compilers: make([]jsonCompiler, 0, len(p.Compilers))}
	for _, c := range p.Compilers {
		jc := jsonCompiler{Tool: c.Kind().String(), Args: []jsonArg{}}
		for _, e := range c.Entries() {
			arg := jsonArg{ID: e.ID, Base: e.Base}
			if e.Value.Kind() != compiler.KindFlag {
				raw, err := ctyjson.Marshal(e.Value.Cty(), compiler.CtyType(e.Value.Kind()))
				if err != nil {
					return nil, fmt.Errorf("failed to encode argument %q: %w", e.ID, err)
				}
				arg.Value = raw
			}
			jc.Args = append(jc.Args, arg)
		}
		doc.Compilers = append(doc.Compilers, jc)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeJSON parses a JSON profile.
func DecodeJSON(src []byte) (*Profile, error) {
	var doc jsonProfile
	if err := json.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	id, err := parseID(doc.ID)
	if err != nil {
		return nil, err
	}
	p := &Profile{ID: id}

	for _, jc := range doc.Compilers {
		kind, err := toolset.ParseKind(jc.Tool)
		if err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		spec := kind.Spec()
		entries := make([]compiler.Entry, 0, len(jc.Args))
		for _, a := range jc.Args {
			v, err := jsonValue(spec, a)
			if err != nil {
				return nil, fmt.Errorf("failed to decode profile: %w", err)
			}
			entry, err := resolveEntry(spec, a.ID, a.Base, v)
			if err != nil {
				return nil, fmt.Errorf("failed to decode profile: %w", err)
			}
			entries = append(entries, entry)
		}

		c, err := toolset.Restore(kind, entries)
		if err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		p.Compilers = append(p.Compilers, c)
	}
	return p, nil
}

// jsonValue decodes the raw value with the cty type of the argument's kind.
// A missing value decodes to null.
func jsonValue(spec *compiler.ToolSpec, a jsonArg) (cty.Value, error) {
	if len(a.Value) == 0 {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	arg, ok := spec.Arg(a.ID)
	if !ok {
		return cty.NilVal, fmt.Errorf("%s has no argument %q", spec.Name, a.ID)
	}
	ty := compiler.CtyType(arg.Kind)
	if ty == cty.NilType {
		return cty.NilVal, fmt.Errorf("argument %q: flag arguments do not take a value", a.ID)
	}
	v, err := ctyjson.Unmarshal(a.Value, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("argument %q: %w", a.ID, err)
	}
	return v, nil
}
