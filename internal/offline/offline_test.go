// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package offline

import (
	"errors"
	"testing"
)

func TestSetAndCheckOfflineMode(t *testing.T) {
	t.Cleanup(func() { SetOfflineMode(false) })

	SetOfflineMode(false)
	if err := CheckChatAllowed(); err != nil {
		t.Errorf("online mode should allow chat: %v", err)
	}

	SetOfflineMode(true)
	if !IsOfflineMode() {
		t.Error("IsOfflineMode should report true")
	}
	if err := CheckChatAllowed(); !errors.Is(err, ErrNetworkBlocked) {
		t.Errorf("expected ErrNetworkBlocked, got %v", err)
	}
}

func TestToggle(t *testing.T) {
	t.Cleanup(func() { SetOfflineMode(false) })

	SetOfflineMode(false)
	if got := Toggle(); !got {
		t.Error("toggle from false should return true")
	}
	if got := Toggle(); got {
		t.Error("toggle from true should return false")
	}
}

func TestValidateBackendURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{"https ok", "https://adam.example.com", nil},
		{"http ok", "http://localhost:5000", nil},
		{"file scheme", "file:///etc/passwd", ErrInvalidURLScheme},
		{"javascript scheme", "javascript:alert(1)", ErrInvalidURLScheme},
		{"no host", "http://", ErrInvalidURL},
		{"empty", "", ErrInvalidURLScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBackendURL(tt.url)
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStatusBadge(t *testing.T) {
	t.Cleanup(func() { SetOfflineMode(false) })

	SetOfflineMode(true)
	if got := StatusBadge(); got != "[OFFLINE]" {
		t.Errorf("badge = %q", got)
	}
	SetOfflineMode(false)
	if got := StatusBadge(); got != "" {
		t.Errorf("badge = %q, want empty", got)
	}
}
