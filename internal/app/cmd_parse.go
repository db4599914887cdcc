// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/srcbuild/internal/ctxlog"
	"github.com/specialistvlad/srcbuild/toolset"
)

// parseResult is one line of the parse command's output.
type parseResult struct {
	Input string `json:"input"`
	ID    string `json:"id,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// runParse reads every positional argument as "<flag>[ <value>]" for the
// selected tool. All inputs are reported; the first failure is returned.
func (a *App) runParse(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	kind, err := toolset.ParseKind(a.config.Tool)
	if err != nil {
		return err
	}

	var (
		results  []parseResult
		firstErr error
	)
	for _, text := range a.config.Args {
		res := parseResult{Input: text}

		c := toolset.New(kind)
		if err := c.AddRaw(text); err != nil {
			logger.Debug("Argument rejected.", "input", text, "error", err)
			res.Error = err.Error()
			if firstErr == nil {
				firstErr = fmt.Errorf("parse %q: %w", text, err)
			}
			results = append(results, res)
			continue
		}

		entry := c.Entries()[0]
		res.ID = entry.ID
		res.Kind = entry.Value.Kind().String()
		res.Value = entry.Value.String()
		results = append(results, res)
	}

	if a.config.Format == FormatJSON {
		if err := writeJSON(a.outW, results); err != nil {
			return err
		}
		return firstErr
	}

	for _, res := range results {
		if res.Error != "" {
			failLabel.Fprint(a.outW, "error")
			fmt.Fprintf(a.outW, " %s: %s\n", quoteArg(res.Input), res.Error)
			continue
		}
		okLabel.Fprint(a.outW, "ok")
		fmt.Fprintf(a.outW, " %s %s", res.ID, dimLabel.Sprintf("(%s)", res.Kind))
		if res.Kind != "flag" {
			fmt.Fprintf(a.outW, " = %s", quoteArg(res.Value))
		}
		fmt.Fprintln(a.outW)
	}
	return firstErr
}
