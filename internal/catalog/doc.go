// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package catalog loads the declarative flag catalogs of the compiler tools.
//
// Every tool is described by a `compiler` block in an HCL manifest: its name,
// description, working directory template and one `arg` block per supported
// flag. The loader translates those blocks into immutable compiler.ToolSpec
// values and collects them in a Registry.
//
// The manifests of the built-in tools are embedded in the binary. Builtin
// loads them once, the first time any tool package needs its catalog; the
// registry is read-only afterwards. A broken built-in manifest is a
// programming error and panics.
package catalog
