// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package toolset

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/srcbuild/compiler"
	"github.com/specialistvlad/srcbuild/tools/bspzip"
	"github.com/specialistvlad/srcbuild/tools/vbsp"
	"github.com/specialistvlad/srcbuild/tools/vrad"
	"github.com/specialistvlad/srcbuild/tools/vvis"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		got, err := ParseKind(kind.String())
		require.NoError(t, err)
		require.Equal(t, kind, got)
	}

	got, err := ParseKind("VRAD")
	require.NoError(t, err)
	require.Equal(t, Vrad, got)

	_, err = ParseKind("studiomdl")
	require.EqualError(t, err, `unknown tool "studiomdl", expected one of vbsp, vvis, vrad, bspzip`)

	require.Equal(t, "Kind(7)", Kind(7).String())
}

func TestKind_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(map[string]Kind{"tool": Bspzip})
	require.NoError(t, err)
	require.JSONEq(t, `{"tool":"bspzip"}`, string(data))

	var decoded struct{ Tool Kind }
	require.NoError(t, json.Unmarshal([]byte(`{"Tool":"vvis"}`), &decoded))
	require.Equal(t, Vvis, decoded.Tool)

	require.Error(t, json.Unmarshal([]byte(`{"Tool":"nope"}`), &decoded))
	_, err = json.Marshal(Kind(-1))
	require.Error(t, err)
}

// TestDispatchTransparency checks that the façade returns exactly what the
// wrapped compiler returns.
func TestDispatchTransparency(t *testing.T) {
	t.Parallel()

	ctx := compiler.NewContext("/bin", "/game", "/maps/de_test.vmf", "")

	vbspC := vbsp.Default()
	vbspC.AddArg(vbsp.Verbose(), vbsp.MicroVolumeTest(0.5))
	vvisC := vvis.Default()
	vvisC.AddArg(vvis.Fast())
	vradC := vrad.New()
	vradC.AddArg(vrad.Fast())
	bspzipC := bspzip.Default()
	bspzipC.AddArg(bspzip.PackFileList("list.txt"))

	testCases := []struct {
		facade  Compiler
		wrapped Engine
		kind    Kind
	}{
		{facade: FromVbsp(vbspC), wrapped: vbspC, kind: Vbsp},
		{facade: FromVvis(vvisC), wrapped: vvisC, kind: Vvis},
		{facade: FromVrad(vradC), wrapped: vradC, kind: Vrad},
		{facade: FromBspzip(bspzipC), wrapped: bspzipC, kind: Bspzip},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			t.Parallel()

			f := tc.facade
			require.Equal(t, tc.kind, f.Kind())
			require.Equal(t, tc.wrapped.Name(), f.Name())
			require.Equal(t, tc.wrapped.Description(), f.Description())
			require.Equal(t, tc.wrapped.WorkingDirTemplate(), f.WorkingDirTemplate())
			require.Equal(t, tc.wrapped.Metadata(), f.Metadata())
			require.Same(t, tc.wrapped.Spec(), f.Spec())
			require.Equal(t, tc.wrapped.BuildArgs(), f.BuildArgs())
			require.Equal(t, tc.wrapped.StructuredArgs(), f.StructuredArgs())
			if diff := cmp.Diff(tc.wrapped.Entries(), f.Entries(), cmp.AllowUnexported(compiler.Value{})); diff != "" {
				t.Errorf("Entries() mismatch (-wrapped +facade):\n%s", diff)
			}
			require.Equal(t, tc.wrapped.BuildCommand(ctx), f.BuildCommand(ctx))
		})
	}
}

func TestCompiler_ForwardsMutation(t *testing.T) {
	t.Parallel()

	c := Default(Vrad)
	require.NoError(t, c.AddRaw("-bounce 4"))
	require.NoError(t, c.AddEntry("Final", compiler.FlagValue()))
	require.Equal(t, []string{"-game", "$gameDir", "$bspPath", "-bounce", "4", "-final"}, c.BuildArgs())

	wrapped, ok := c.Vrad()
	require.True(t, ok)
	require.Equal(t, c.BuildArgs(), wrapped.BuildArgs())

	_, ok = c.Vbsp()
	require.False(t, ok)

	c.ClearArgs()
	require.Equal(t, []string{"-game", "$gameDir", "$bspPath"}, wrapped.BuildArgs())

	require.ErrorIs(t, c.AddRaw("-micro 1"), compiler.ErrUnknownArgument)
	require.Error(t, c.AddEntry("Bounce", compiler.FloatValue(1)))
}

func TestNewAndDefault(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		require.Empty(t, New(kind).BuildArgs(), kind.String())
		require.NotEmpty(t, Default(kind).BuildArgs(), kind.String())
	}
	require.Panics(t, func() { New(Kind(9)) })
	require.Panics(t, func() { Default(Kind(-1)) })

	_, ok := New(Vvis).Vvis()
	require.True(t, ok)
	_, ok = New(Bspzip).Bspzip()
	require.True(t, ok)
}

func TestRestore(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		orig := Default(kind)
		require.NoError(t, orig.AddRaw("-game /custom"))

		restored, err := Restore(kind, orig.Entries())
		require.NoError(t, err)
		require.Equal(t, kind, restored.Kind())
		require.Equal(t, orig.BuildArgs(), restored.BuildArgs())
	}

	_, err := Restore(Vbsp, []compiler.Entry{{ID: "Fast", Value: compiler.FlagValue()}})
	require.ErrorContains(t, err, `vbsp: entry 0: VBSP has no argument "Fast"`)

	_, err = Restore(Kind(5), nil)
	require.Error(t, err)
}

func TestBuildPipeline(t *testing.T) {
	t.Parallel()

	pipeline := []Compiler{Default(Vbsp), Default(Vvis), Default(Vrad)}
	ctx := compiler.NewContext("/bin", "/game", "/maps/koth_test.vmf", "")

	cmds := BuildPipeline(ctx, pipeline)
	require.Len(t, cmds, 3)
	require.Equal(t, "VBSP", cmds[0].Name)
	require.Equal(t, []string{"-game", "/game", "/maps/koth_test.vmf"}, cmds[0].Args)
	require.Equal(t, "/bin/vvis.exe", cmds[1].CompilerPath)
	require.Equal(t, []string{"-game", "/game", "/maps/koth_test.bsp"}, cmds[2].Args)
}

func TestKind_Spec(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		require.Same(t, New(kind).Spec(), kind.Spec())
	}
	require.Panics(t, func() { Kind(4).Spec() })
}
