// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/adam-tui/internal/offline"
	"github.com/jeranaias/adam-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete adam-tui configuration.
type Config struct {
	Version string `toml:"version"`

	// OfflineMode disables all network access; every reply comes from
	// the canned table.
	OfflineMode bool `toml:"offline_mode"`

	API  APIConfig  `toml:"api"`
	Chat ChatConfig `toml:"chat"`
	UI   UIConfig   `toml:"ui"`
}

// APIConfig configures the Adam backend endpoint.
type APIConfig struct {
	// BaseURL is the backend base URL; the chat endpoint is
	// BaseURL + "/api/chat".
	BaseURL string `toml:"base_url"`
	// TimeoutSecs bounds each request. Expiry counts as failure and the
	// turn settles from the fallback table.
	TimeoutSecs int `toml:"timeout_secs"`
}

// ChatConfig configures session behavior.
type ChatConfig struct {
	// GreetingDelayMs is how long after the view opens the scripted
	// greeting appears.
	GreetingDelayMs int `toml:"greeting_delay_ms"`
	// HistoryEnabled archives completed turns to the local SQLite file.
	HistoryEnabled bool `toml:"history_enabled"`
	// HistoryPath overrides the default ~/.adam/history.db.
	HistoryPath string `toml:"history_path"`
}

// UIConfig configures the TUI.
type UIConfig struct {
	// Theme selects the color theme: "clay" (default) or "mono".
	Theme string `toml:"theme"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// DefaultBaseURL matches the Flask backend's development address.
const DefaultBaseURL = "http://localhost:5000"

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:     "1",
		OfflineMode: false,
		API: APIConfig{
			BaseURL:     DefaultBaseURL,
			TimeoutSecs: 15,
		},
		Chat: ChatConfig{
			GreetingDelayMs: 600,
			HistoryEnabled:  true,
		},
		UI: UIConfig{
			Theme: "clay",
		},
	}
}

// DataDir returns the adam-tui data directory (~/.adam).
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".adam"), nil
}

// Path returns the default config file path.
func Path() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config from the default path, applying defaults for a
// missing file and environment overrides on top.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. A missing file is not
// an error: defaults apply.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file, which keeps
// one-off invocations scriptable without editing the config.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ADAM_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("ADAM_API_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.API.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("ADAM_OFFLINE"); v != "" {
		c.OfflineMode = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("ADAM_HISTORY"); v != "" {
		c.Chat.HistoryEnabled = v == "1" || strings.EqualFold(v, "true")
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks field values, clamping where a safe default exists.
func (c *Config) Validate() error {
	if err := offline.ValidateBackendURL(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url %q: %w", c.API.BaseURL, err)
	}
	if c.API.TimeoutSecs <= 0 {
		c.API.TimeoutSecs = 15
	}
	if c.Chat.GreetingDelayMs < 0 {
		c.Chat.GreetingDelayMs = 0
	}
	switch c.UI.Theme {
	case "", "clay", "mono":
	default:
		return fmt.Errorf("ui.theme %q: unknown theme", c.UI.Theme)
	}
	return nil
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSecs) * time.Second
}

// GreetingDelay returns the greeting delay as a duration.
func (c *Config) GreetingDelay() time.Duration {
	return time.Duration(c.Chat.GreetingDelayMs) * time.Millisecond
}

// HistoryPath returns the configured or default history database path.
func (c *Config) HistoryPath() (string, error) {
	if c.Chat.HistoryPath != "" {
		return c.Chat.HistoryPath, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the config to the default path atomically.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path atomically.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// =============================================================================
// KEY ACCESS (config set CLI)
// =============================================================================

// Set updates one field by its dotted key name. Used by "adam config set".
func (c *Config) Set(key, value string) error {
	switch key {
	case "api.base_url":
		if err := offline.ValidateBackendURL(value); err != nil {
			return fmt.Errorf("api.base_url %q: %w", value, err)
		}
		c.API.BaseURL = value
	case "api.timeout_secs":
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			return fmt.Errorf("api.timeout_secs must be a positive integer, got %q", value)
		}
		c.API.TimeoutSecs = secs
	case "chat.greeting_delay_ms":
		ms, err := strconv.Atoi(value)
		if err != nil || ms < 0 {
			return fmt.Errorf("chat.greeting_delay_ms must be a non-negative integer, got %q", value)
		}
		c.Chat.GreetingDelayMs = ms
	case "chat.history_enabled":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("chat.history_enabled must be true or false, got %q", value)
		}
		c.Chat.HistoryEnabled = enabled
	case "chat.history_path":
		c.Chat.HistoryPath = value
	case "ui.theme":
		if value != "clay" && value != "mono" {
			return fmt.Errorf("ui.theme must be clay or mono, got %q", value)
		}
		c.UI.Theme = value
	case "offline_mode":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("offline_mode must be true or false, got %q", value)
		}
		c.OfflineMode = enabled
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

// Keys lists the settable config keys for help output.
func Keys() []string {
	return []string{
		"api.base_url",
		"api.timeout_secs",
		"chat.greeting_delay_ms",
		"chat.history_enabled",
		"chat.history_path",
		"ui.theme",
		"offline_mode",
	}
}
