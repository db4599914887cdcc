// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits of the log file.
const (
	logFileMaxSizeMB  = 16
	logFileMaxBackups = 3
	logFileMaxAgeDays = 14
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances. When file is
// set, records are also written to a size-rotated log file; the returned
// closer releases it and is nil otherwise.
func newLogger(levelStr, formatStr, file string, outW io.Writer) (*slog.Logger, io.Closer) {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var closer io.Closer
	if file != "" {
		rotated := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
		}
		outW = io.MultiWriter(outW, rotated)
		closer = rotated
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler), closer
}
