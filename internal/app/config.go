// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"errors"
	"fmt"
	"slices"
)

// Commands understood by App.Run.
const (
	CommandTools = "tools"
	CommandFlags = "flags"
	CommandParse = "parse"
	CommandBuild = "build"
	CommandCheck = "check"
)

// Commands lists every command in the order they are documented.
var Commands = []string{CommandTools, CommandFlags, CommandParse, CommandBuild, CommandCheck}

// Output formats of the build command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command string

	LogFormat string
	LogLevel  string
	LogFile   string // rotated log file, empty to disable

	Tool        string
	ProfilePath string
	Bare        bool // start from an empty compiler instead of the tool defaults

	// Game filters the flags listing when FilterGame is set.
	Game       uint32
	FilterGame bool
	Prefix     string

	BinDir     string
	GameDir    string
	MapPath    string
	OutDir     string
	Executable string

	Format   string
	SavePath string

	// Args are the positional arguments of the command: argument texts for
	// parse and build, manifest paths for check.
	Args []string
}

func NewConfig(cfg Config) (*Config, error) {
	if !slices.Contains(Commands, cfg.Command) {
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return nil, fmt.Errorf("invalid format %q: must be 'text' or 'json'", cfg.Format)
	}

	switch cfg.Command {
	case CommandFlags:
		if cfg.Tool == "" {
			return nil, errors.New("flags: -tool is required")
		}
	case CommandParse:
		if cfg.Tool == "" {
			return nil, errors.New("parse: -tool is required")
		}
		if len(cfg.Args) == 0 {
			return nil, errors.New("parse: at least one argument text is required")
		}
	case CommandBuild:
		if (cfg.Tool == "") == (cfg.ProfilePath == "") {
			return nil, errors.New("build: exactly one of -tool or -profile is required")
		}
		if cfg.ProfilePath != "" && len(cfg.Args) > 0 {
			return nil, errors.New("build: positional arguments can only be used with -tool")
		}
		if cfg.ProfilePath != "" && cfg.Executable != "" {
			return nil, errors.New("build: -exe can only be used with -tool")
		}
		if cfg.ProfilePath != "" && cfg.Bare {
			return nil, errors.New("build: -bare can only be used with -tool")
		}
	case CommandCheck:
		if len(cfg.Args) == 0 {
			return nil, errors.New("check: at least one manifest path is required")
		}
	}

	return &cfg, nil
}
