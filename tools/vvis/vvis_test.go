// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package vvis

import (
	"testing"

	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	require.Equal(t, "VVIS", c.Name())
	require.Equal(t, []string{"-game", "$gameDir", "$bspPath"}, c.BuildArgs())
}

func TestBuildCommand(t *testing.T) {
	t.Parallel()

	c := Default()
	c.AddArg(Fast(), RadiusOverride(4096))

	ctx := compiler.NewContext("/steam/bin", "/steam/hl2", "/maps/src/dm_test.vmf", "")
	got := c.BuildCommand(ctx)

	require.Equal(t, "VVIS", got.Name)
	require.Equal(t, "/steam/bin/vvis.exe", got.CompilerPath)
	require.Equal(t, "/steam/bin", got.WorkingDir)
	require.Equal(t, []string{"-game", "/steam/hl2", "/maps/src/dm_test.bsp", "-fast", "-radius_override", "4096"}, got.Args)
}

func TestParse(t *testing.T) {
	t.Parallel()

	arg, err := Parse("-threads 8")
	require.NoError(t, err)
	require.Equal(t, Threads(8), arg)

	_, err = Parse("-threads 8.5")
	require.ErrorIs(t, err, compiler.ErrInvalidValue)

	_, err = Parse("-micro 1")
	require.ErrorIs(t, err, compiler.ErrUnknownArgument, "-micro belongs to VBSP")
}
