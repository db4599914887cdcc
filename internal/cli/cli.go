package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/srcbuild/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `
srcbuild - Build and inspect Source engine map compiler command lines.

Usage:
  srcbuild [global options] <command> [command options] [ARGS...]

Commands:
  tools    List the built-in compilers.
  flags    List the arguments a compiler accepts.
  parse    Parse argument texts such as "-micro 0.5" for a compiler.
  build    Print the resolved command lines of a compiler or a saved profile.
  check    Validate manifest files or directories.

Argument texts start with '-', so separate them from the command options
with '--':
  srcbuild build -tool vbsp -map /maps/de_test.vmf -- -verbose "-micro 0.5"

Run 'srcbuild <command> -h' for the options of a command.

Global options:
`

// Parse processes command-line arguments. It returns a populated AppConfig,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("srcbuild", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", "", "Also write logs to this file, rotated by size.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := app.Config{
		Command:   flagSet.Arg(0),
		LogFormat: logFormat,
		LogLevel:  logLevel,
		LogFile:   *logFileFlag,
	}
	exit, err := parseCommand(&cfg, flagSet.Args()[1:], output)
	if err != nil || exit {
		return nil, exit, err
	}
	slog.Debug("Arguments parsed successfully.", "command", cfg.Command)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// parseCommand reads the options of cfg.Command from args and stores the
// remaining positional arguments in cfg.Args.
func parseCommand(cfg *app.Config, args []string, output io.Writer) (bool, error) {
	flagSet := flag.NewFlagSet("srcbuild "+cfg.Command, flag.ContinueOnError)
	flagSet.SetOutput(output)

	var (
		game    uint
		tool    = &cfg.Tool
		format  = &cfg.Format
		argsDoc string
	)
	switch cfg.Command {
	case app.CommandTools:
	case app.CommandFlags:
		flagSet.StringVar(tool, "tool", "", "Compiler to describe: vbsp, vvis, vrad or bspzip.")
		flagSet.UintVar(&game, "game", 0, "Only list arguments available for this Steam App ID, e.g. 730.")
		flagSet.StringVar(&cfg.Prefix, "prefix", "", "Only list arguments whose token starts with this prefix.")
	case app.CommandParse:
		argsDoc = " -- TEXT..."
		flagSet.StringVar(tool, "tool", "", "Compiler whose catalog is used: vbsp, vvis, vrad or bspzip.")
		flagSet.StringVar(format, "format", app.FormatText, "Output format. Options: 'text' or 'json'.")
	case app.CommandBuild:
		argsDoc = " -- [TEXT...]"
		flagSet.StringVar(tool, "tool", "", "Compiler to build: vbsp, vvis, vrad or bspzip.")
		flagSet.StringVar(&cfg.ProfilePath, "profile", "", "Build every compiler of a saved profile (.hcl or .json).")
		flagSet.BoolVar(&cfg.Bare, "bare", false, "Start without the base arguments of the compiler.")
		flagSet.StringVar(&cfg.BinDir, "bin", "", "Directory containing the compiler executables ($binDir).")
		flagSet.StringVar(&cfg.GameDir, "game-dir", "", "Game directory, e.g. the folder holding gameinfo.txt ($gameDir).")
		flagSet.StringVar(&cfg.MapPath, "map", "", "Path to the map source file ($mapPath).")
		flagSet.StringVar(&cfg.OutDir, "out", "", "Output directory ($outDir), defaults to the map directory.")
		flagSet.StringVar(&cfg.Executable, "exe", "", "Path of the compiler executable, overriding <bin>/<tool>.exe.")
		flagSet.StringVar(format, "format", app.FormatText, "Output format. Options: 'text' or 'json'.")
		flagSet.StringVar(&cfg.SavePath, "save", "", "Save the pipeline as a profile at this path.")
	case app.CommandCheck:
		argsDoc = " PATH..."
	default:
		return false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q, expected one of %s", cfg.Command, strings.Join(app.Commands, ", "))}
	}

	flagSet.Usage = func() {
		fmt.Fprintf(output, "Usage:\n  srcbuild %s [options]%s\n\nOptions:\n", cfg.Command, argsDoc)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return true, nil
		}
		return false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "game" {
			cfg.FilterGame = true
		}
	})
	if uint64(game) > uint64(^uint32(0)) {
		return false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -game %d: not a Steam App ID", game)}
	}
	cfg.Game = uint32(game)
	cfg.Args = flagSet.Args()
	return false, nil
}
