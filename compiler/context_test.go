// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	t.Parallel()

	p := filepath.FromSlash

	testCases := []struct {
		name    string
		mapPath string
		outDir  string
		want    Context
	}{
		{
			name:    "full path",
			mapPath: p("/maps/src/de_dust2.vmf"),
			want: Context{
				MapPath:    p("/maps/src/de_dust2.vmf"),
				OutDir:     p("/maps/src"),
				MapDir:     p("/maps/src"),
				MapName:    "de_dust2",
				MapNameExt: "de_dust2.vmf",
				MapExt:     "vmf",
				BspPath:    p("/maps/src/de_dust2.bsp"),
			},
		},
		{
			name:    "explicit out dir",
			mapPath: p("/maps/cp_test.vmf"),
			outDir:  p("/out"),
			want: Context{
				MapPath:    p("/maps/cp_test.vmf"),
				OutDir:     p("/out"),
				MapDir:     p("/maps"),
				MapName:    "cp_test",
				MapNameExt: "cp_test.vmf",
				MapExt:     "vmf",
				BspPath:    p("/maps/cp_test.bsp"),
			},
		},
		{
			name:    "bare file name",
			mapPath: "arena.vmf",
			want: Context{
				MapPath:    "arena.vmf",
				MapName:    "arena",
				MapNameExt: "arena.vmf",
				MapExt:     "vmf",
				BspPath:    "arena.bsp",
			},
		},
		{
			name:    "no extension",
			mapPath: p("/maps/arena"),
			want: Context{
				MapPath:    p("/maps/arena"),
				OutDir:     p("/maps"),
				MapDir:     p("/maps"),
				MapName:    "arena",
				MapNameExt: "arena",
				BspPath:    p("/maps/arena.bsp"),
			},
		},
		{
			name:    "file in root",
			mapPath: p("/x.vmf"),
			want: Context{
				MapPath:    p("/x.vmf"),
				OutDir:     p("/"),
				MapDir:     p("/"),
				MapName:    "x",
				MapNameExt: "x.vmf",
				MapExt:     "vmf",
				BspPath:    p("/x.bsp"),
			},
		},
		{
			name: "empty map path",
			want: Context{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := NewContext("", "", tc.mapPath, tc.outDir)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("NewContext() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContext_Replace(t *testing.T) {
	t.Parallel()

	ctx := Context{
		BinDir:     "/bin",
		GameDir:    "/game",
		MapPath:    "/maps/de_dust2.vmf",
		OutDir:     "/out",
		MapDir:     "/maps",
		MapName:    "de_dust2",
		MapNameExt: "de_dust2.vmf",
		MapExt:     "vmf",
		BspPath:    "/maps/de_dust2.bsp",
	}

	testCases := []struct {
		in   string
		want string
	}{
		{in: "no placeholders", want: "no placeholders"},
		{in: "$binDir", want: "/bin"},
		{in: "$gameDir", want: "/game"},
		{in: "$mapPath", want: "/maps/de_dust2.vmf"},
		{in: "$outDir", want: "/out"},
		{in: "$mapDir", want: "/maps"},
		{in: "$mapNameExt", want: "de_dust2.vmf"},
		{in: "$mapName", want: "de_dust2"},
		{in: "$mapExt", want: "vmf"},
		{in: "$bspPath", want: "/maps/de_dust2.bsp"},
		{in: "$file", want: "de_dust2"},
		{in: "$path", want: "/maps/de_dust2.vmf"},
		{in: "$outDir/$mapName.bsp", want: "/out/de_dust2.bsp"},
		{in: "$mapNameExtra", want: "de_dust2.vmfra"},
		{in: "$unknown", want: "$unknown"},
		{in: "$", want: "$"},
		{in: "$$binDir", want: "$/bin"},
		{in: "cost: $5", want: "cost: $5"},
		{in: "$BINDIR", want: "$BINDIR"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ctx.Replace(tc.in))
		})
	}
}

func TestContext_ReplaceIsSinglePass(t *testing.T) {
	t.Parallel()

	ctx := Context{GameDir: "$binDir", BinDir: "/bin"}
	require.Equal(t, "$binDir", ctx.Replace("$gameDir"))
}

func TestContext_ReplaceEmpty(t *testing.T) {
	t.Parallel()

	var ctx Context
	for _, key := range Placeholders() {
		require.Empty(t, ctx.Replace("$"+key), key)
	}
	require.Equal(t, "-game ", ctx.Replace("-game $gameDir"))
}

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	want := []string{"binDir", "gameDir", "mapPath", "outDir", "mapDir", "mapNameExt", "mapName", "mapExt", "bspPath", "file", "path"}
	require.Equal(t, want, Placeholders())
}
