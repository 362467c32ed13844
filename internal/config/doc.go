// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// adam-tui.
//
// Configuration is TOML at ~/.adam/config.toml with built-in defaults
// and environment variable overrides (ADAM_API_URL, ADAM_API_TIMEOUT_SECS,
// ADAM_OFFLINE, ADAM_HISTORY). Saves are atomic. A fsnotify-based watcher
// lets a running TUI pick up config edits without restarting.
package config
