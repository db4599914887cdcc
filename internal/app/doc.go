// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package app contains the application logic behind the srcbuild commands.
// It turns a validated Config into catalog listings, parse results and
// resolved compiler commands, decoupled from any specific entrypoint like a
// CLI.
package app
