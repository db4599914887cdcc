// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/srcbuild/compiler"
)

// kindFromExpr converts the `type` attribute of an arg block, a bare keyword
// such as `float`, into its compiler.ValueKind.
func kindFromExpr(expr hcl.Expression) (compiler.ValueKind, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	// A keyword is a traversal with a single root name; anything else, such
	// as a quoted string or a function call, is rejected.
	traversal, travDiags := hcl.AbsTraversalForExpr(expr)
	if travDiags.HasErrors() || len(traversal) != 1 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid type specification",
			Detail:   "The 'type' attribute must be a bare keyword: flag, float, integer, string or path.",
			Subject:  expr.Range().Ptr(),
		})
		return 0, diags
	}

	name := traversal.RootName()
	kind, ok := compiler.ParseValueKind(name)
	if !ok {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported type",
			Detail:   fmt.Sprintf("The keyword '%s' is not a valid type. Supported types are: flag, float, integer, string, path.", name),
			Subject:  expr.Range().Ptr(),
		})
		return 0, diags
	}
	return kind, diags
}
