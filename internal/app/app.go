// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/srcbuild/internal/ctxlog"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	closer io.Closer
}

// NewApp is the constructor for the main application. Command output goes to
// outW and log records to logW, so that piping the output of build stays
// clean.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger, closer := newLogger(cfg.LogLevel, cfg.LogFormat, cfg.LogFile, logW)
	logger.Debug("Logger configured successfully.", "command", cfg.Command)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		closer: closer,
	}
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
