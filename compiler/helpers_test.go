// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"sync"
)

// demoTool is a small in-package tool used across the tests.
type demoTool struct{}

var demoSpec = sync.OnceValue(func() *ToolSpec {
	pathDefault := PathValue("$mapPath")
	gameDefault := PathValue("$gameDir")
	scaleDefault := FloatValue(1)
	countDefault := IntValue(3)

	spec, err := NewToolSpec("DEMO", "Demo compiler", "$binDir", []*ArgSpec{
		{ID: "Game", Name: "Game Directory", Token: "-game", Kind: KindPath, Default: &gameDefault, Base: true},
		{ID: "Input", Name: "Input", Kind: KindPath, Default: &pathDefault, Base: true},
		{ID: "Verbose", Name: "Verbose", Token: "-verbose", Kind: KindFlag},
		{ID: "Scale", Name: "Scale", Token: "-scale", Kind: KindFloat, Default: &scaleDefault},
		{ID: "Count", Name: "Count", Token: "-count", Kind: KindInteger, Default: &countDefault, Games: []uint32{730}},
		{ID: "Label", Name: "Label", Token: "-label", Kind: KindString},
		{ID: "Output", Name: "Output", Token: "-out", Kind: KindPath},
	})
	if err != nil {
		panic(err)
	}
	return spec
})

func (demoTool) Spec() *ToolSpec { return demoSpec() }

// otherTool only exists to show that tools do not share entries.
type otherTool struct{}

var otherSpec = sync.OnceValue(func() *ToolSpec {
	spec, err := NewToolSpec("OTHER", "", "", []*ArgSpec{
		{ID: "Verbose", Name: "Verbose", Token: "-verbose", Kind: KindFlag},
	})
	if err != nil {
		panic(err)
	}
	return spec
})

func (otherTool) Spec() *ToolSpec { return otherSpec() }
