// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses the adam command line and runs the non-TUI
// commands: ask, chat, status, config, and history. The default
// invocation (no command) starts the TUI, which lives in
// internal/ui/chat and is wired up by main.
package cli
