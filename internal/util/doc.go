// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for adam-tui.
//
// It contains:
//   - Atomic file writes with fsync (used for the user ID file and config)
//   - Rune- and width-aware string helpers built on go-runewidth
//   - Input normalization (NFC) applied before text leaves the client
//
// Nothing in this package depends on other internal packages; it sits at
// the bottom of the dependency graph.
package util
