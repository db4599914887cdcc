// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/srcbuild/internal/catalog"
)

// runCheck validates manifest files or directories without installing them.
func (a *App) runCheck(ctx context.Context) error {
	reg, err := catalog.LoadPaths(ctx, a.config.Args...)
	if err != nil {
		failLabel.Fprintln(a.outW, "FAIL")
		return err
	}

	for _, key := range reg.Keys() {
		spec := reg.MustTool(key)
		okLabel.Fprint(a.outW, "ok")
		fmt.Fprintf(a.outW, "   %s (%s, %d args, %d base)\n", key, spec.Name, len(spec.Args()), len(spec.BaseArgs()))
	}
	if reg.Len() == 0 {
		a.logger.Warn("No compilers found.", "paths", a.config.Args)
	}
	return nil
}
