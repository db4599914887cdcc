package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(out, errOut, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_CommandError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"parse", "-tool", "vvis", "--", "-nosuchflag"})

	var exitErr *cli.ExitError
	require.Error(t, err)
	require.False(t, errors.As(err, &exitErr), "command failures are not usage errors")
	require.ErrorIs(t, err, compiler.ErrUnknownArgument)
}

func TestRun_BuildProfile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	profilePath := filepath.Join(dir, "pipeline.json")
	logPath := filepath.Join(dir, "srcbuild.log")

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{
		"-log-level", "info", "-log-file", logPath,
		"build", "-tool", "vvis", "-save", profilePath, "--", "-fast",
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	err = run(out, &bytes.Buffer{}, []string{
		"build", "-profile", profilePath, "-bin", "/sdk/bin", "-game-dir", "/sdk/hl2", "-map", "/maps/a.vmf", "-format", "json",
	})
	require.NoError(t, err)

	var cmds []compiler.CommandInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &cmds))
	require.Len(t, cmds, 1)
	require.Equal(t, "VVIS", cmds[0].Name)
	require.Equal(t, []string{"-game", "/sdk/hl2", "/maps/a.bsp", "-fast"}, cmds[0].Args)

	logData, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(logData), "Profile saved.")
}
