// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/internal/ctxlog"
	"github.com/specialistvlad/srcbuild/profile"
	"github.com/specialistvlad/srcbuild/toolset"
)

// runBuild resolves the commands of a single tool or of a saved pipeline.
func (a *App) runBuild(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	cfg := a.config

	p, err := a.loadPipeline(ctx)
	if err != nil {
		return err
	}

	cctx := compiler.NewContext(cfg.BinDir, cfg.GameDir, cfg.MapPath, cfg.OutDir)
	var opts []compiler.BuildOption
	if cfg.Executable != "" {
		opts = append(opts, compiler.WithExecutable(cfg.Executable))
	}
	commands := toolset.BuildPipeline(cctx, p.Compilers, opts...)
	logger.Debug("Commands built.", "count", len(commands), "profile", p.ID)

	if cfg.SavePath != "" {
		if err := p.Save(ctx, cfg.SavePath); err != nil {
			return err
		}
		logger.Info("Profile saved.", "path", cfg.SavePath, "id", p.ID)
	}

	if cfg.Format == FormatJSON {
		return writeJSON(a.outW, commands)
	}
	for _, cmd := range commands {
		fmt.Fprintln(a.outW, dimLabel.Sprintf("# %s (working dir: %s)", cmd.Name, quoteArg(cmd.WorkingDir)))
		fmt.Fprintln(a.outW, commandLine(cmd.CompilerPath, cmd.Args))
	}
	return nil
}

// loadPipeline returns the saved profile, or a one-compiler profile built
// from -tool and the positional arguments.
func (a *App) loadPipeline(ctx context.Context) (*profile.Profile, error) {
	cfg := a.config
	if cfg.ProfilePath != "" {
		return profile.Load(ctx, cfg.ProfilePath)
	}

	kind, err := toolset.ParseKind(cfg.Tool)
	if err != nil {
		return nil, err
	}

	c := toolset.Default(kind)
	if cfg.Bare {
		c = toolset.New(kind)
	}
	for _, text := range cfg.Args {
		if err := c.AddRaw(text); err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name(), err)
		}
	}
	return profile.New(c), nil
}
