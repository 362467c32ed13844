// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the adam-tui
// chat view.
//
// Two themes exist: "clay", an earth-toned palette fitting the Adam
// persona, and "mono" for terminals where color is unwanted. The theme
// detects the terminal's color profile through termenv and degrades
// gracefully on limited terminals.
package styles
