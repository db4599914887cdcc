// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"strconv"

	"github.com/specialistvlad/srcbuild/toolset"
)

// runTools lists the supported compilers.
func (a *App) runTools(ctx context.Context) error {
	table := newTable(a.outW, "Key", "Name", "Description", "Working Dir", "Args")
	for _, kind := range toolset.Kinds() {
		spec := kind.Spec()
		table.Append([]string{
			kind.String(),
			spec.Name,
			spec.Description,
			spec.WorkingDir,
			strconv.Itoa(len(spec.Args())),
		})
	}
	table.Render()
	return nil
}
