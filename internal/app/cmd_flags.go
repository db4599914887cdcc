// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/internal/ctxlog"
	"github.com/specialistvlad/srcbuild/toolset"
)

// runFlags lists the catalog of one tool, optionally narrowed down to a game
// and a token prefix.
func (a *App) runFlags(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	kind, err := toolset.ParseKind(a.config.Tool)
	if err != nil {
		return err
	}
	spec := kind.Spec()

	args := spec.Args()
	if a.config.Prefix != "" {
		args = spec.WithTokenPrefix(a.config.Prefix)
	}

	table := newTable(a.outW, "Token", "ID", "Type", "Default", "Base", "Games")
	shown := 0
	for _, arg := range args {
		if a.config.FilterGame && !arg.IsCompatibleWithGame(a.config.Game) {
			continue
		}
		table.Append([]string{
			tokenCell(arg),
			arg.ID,
			arg.Kind.String(),
			defaultCell(arg),
			baseCell(arg),
			gamesCell(arg),
		})
		shown++
	}
	table.Render()

	logger.Debug("Listed catalog.", "tool", kind, "shown", shown, "total", len(spec.Args()))
	return nil
}

func tokenCell(arg *compiler.ArgSpec) string {
	if arg.Token == "" {
		return "(positional)"
	}
	return arg.Token
}

func defaultCell(arg *compiler.ArgSpec) string {
	if arg.Default == nil {
		return "-"
	}
	return quoteArg(arg.Default.String())
}

func baseCell(arg *compiler.ArgSpec) string {
	if arg.Base {
		return "yes"
	}
	return ""
}

func gamesCell(arg *compiler.ArgSpec) string {
	if arg.Games == nil {
		return "all"
	}
	ids := make([]string, len(arg.Games))
	for i, id := range arg.Games {
		ids[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(ids, ",")
}
