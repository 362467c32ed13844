// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/adam-tui/internal/util"
)

// FileName is the name of the user ID file inside the data directory.
// It mirrors the widget's "adam_user_id" localStorage key.
const FileName = "user_id"

// =============================================================================
// STORE
// =============================================================================

// Store reads and writes the user ID file.
type Store struct {
	// Path is the full path of the user ID file.
	Path string
}

// NewStore creates a store rooted at the default data directory
// (~/.adam).
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return &Store{Path: filepath.Join(homeDir, ".adam", FileName)}, nil
}

// NewStoreWithPath creates a store using an explicit file path.
func NewStoreWithPath(path string) *Store {
	return &Store{Path: path}
}

// EnsureUserID returns the persisted user ID, generating and persisting a
// new one on first use. Once written the value is stable: subsequent
// calls return the same ID for as long as the file survives.
func (s *Store) EnsureUserID() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
		// Empty or corrupted file: fall through and regenerate.
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read user ID file: %w", err)
	}

	id := Generate()

	// RELIABILITY: Atomic write so a crash cannot leave a torn ID that
	// forces regeneration (and a new server-side conversation) later.
	if err := util.AtomicWriteFile(s.Path, []byte(id+"\n"), 0600); err != nil {
		return "", fmt.Errorf("failed to persist user ID: %w", err)
	}

	return id, nil
}

// =============================================================================
// GENERATION
// =============================================================================

// Generate creates a new opaque user ID. It combines a millisecond
// timestamp with UUID randomness, making collisions between
// installations vanishingly unlikely.
func Generate() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return "user_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + random
}
