// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package profile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/toolset"
	"github.com/zclconf/go-cty/cty"
)

type hclFile struct {
	ID        string         `hcl:"id,optional"`
	Compilers []*hclCompiler `hcl:"compiler,block"`
}

type hclCompiler struct {
	Tool string    `hcl:"tool,label"`
	Args []*hclArg `hcl:"arg,block"`
}

type hclArg struct {
	ID    string         `hcl:"id,label"`
	Base  bool           `hcl:"base,optional"`
	Value hcl.Expression `hcl:"value,optional"`
}

// EncodeHCL renders the profile as an HCL document.
func (p *Profile) EncodeHCL() []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()
	root.SetAttributeValue("id", cty.StringVal(p.ID.String()))

	for _, c := range p.Compilers {
		root.AppendNewline()
		body := root.AppendNewBlock("compiler", []string{c.Kind().String()}).Body()
		for _, e := range c.Entries() {
			arg := body.AppendNewBlock("arg", []string{e.ID}).Body()
			if e.Base {
				arg.SetAttributeValue("base", cty.True)
			}
			if e.Value.Kind() != compiler.KindFlag {
				arg.SetAttributeValue("value", e.Value.Cty())
			}
		}
	}
	return f.Bytes()
}

// DecodeHCL parses an HCL profile. filename is only used in diagnostics.
// A document without an id gets a fresh one.
func DecodeHCL(src []byte, filename string) (*Profile, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile: %w", diags)
	}

	var doc hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile: %w", diags)
	}

	id, err := parseID(doc.ID)
	if err != nil {
		return nil, err
	}
	p := &Profile{ID: id}

	for _, block := range doc.Compilers {
		kind, err := toolset.ParseKind(block.Tool)
		if err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		spec := kind.Spec()

		entries := make([]compiler.Entry, 0, len(block.Args))
		for _, a := range block.Args {
			v, valDiags := a.Value.Value(nil)
			if valDiags.HasErrors() {
				return nil, fmt.Errorf("failed to decode profile: %w", valDiags)
			}
			entry, err := resolveEntry(spec, a.ID, a.Base, v)
			if err != nil {
				diags := hcl.Diagnostics{{
					Severity: hcl.DiagError,
					Summary:  "Invalid argument",
					Detail:   err.Error(),
					Subject:  a.Value.Range().Ptr(),
				}}
				return nil, fmt.Errorf("failed to decode profile: %w", diags)
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
