// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package offline

import (
	"errors"
	"net/url"
	"strings"
	"sync"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNetworkBlocked is returned when a network operation is attempted
	// in offline mode.
	ErrNetworkBlocked = errors.New("network operation blocked in offline mode")

	// ErrInvalidURLScheme is returned when a backend URL uses a scheme
	// other than http or https.
	ErrInvalidURLScheme = errors.New("only http and https schemes are allowed")

	// ErrInvalidURL is returned when a backend URL cannot be parsed or
	// has no host.
	ErrInvalidURL = errors.New("invalid backend URL")
)

// =============================================================================
// MODE MANAGEMENT
// =============================================================================

// Global offline mode state with thread-safe access. The flag is read on
// every outbound request and toggled from the CLI flag, the config file,
// and the TUI.
var (
	offlineMode      bool
	offlineModeMutex sync.RWMutex
)

// SetOfflineMode enables or disables offline mode globally. When enabled,
// chat requests are not placed and replies come from the fallback table.
func SetOfflineMode(enabled bool) {
	offlineModeMutex.Lock()
	defer offlineModeMutex.Unlock()
	offlineMode = enabled
}

// IsOfflineMode returns true if offline mode is currently enabled.
func IsOfflineMode() bool {
	offlineModeMutex.RLock()
	defer offlineModeMutex.RUnlock()
	return offlineMode
}

// Toggle flips offline mode and returns the new state.
func Toggle() bool {
	offlineModeMutex.Lock()
	defer offlineModeMutex.Unlock()
	offlineMode = !offlineMode
	return offlineMode
}

// =============================================================================
// GUARDS
// =============================================================================

// CheckChatAllowed returns ErrNetworkBlocked when the chat backend may
// not be contacted.
func CheckChatAllowed() error {
	if IsOfflineMode() {
		return ErrNetworkBlocked
	}
	return nil
}

// ValidateBackendURL checks that a configured backend URL is usable.
// Scheme validation is always performed, regardless of offline mode:
// file://, data:// and friends are never legitimate chat endpoints.
func ValidateBackendURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURL
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return ErrInvalidURLScheme
	}
	if parsed.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// =============================================================================
// STATUS DISPLAY
// =============================================================================

// StatusBadge returns a formatted badge for the UI. Returns "[OFFLINE]"
// when offline, empty string otherwise.
func StatusBadge() string {
	if IsOfflineMode() {
		return "[OFFLINE]"
	}
	return ""
}
