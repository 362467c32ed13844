// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// RELIABILITY: Atomic write with fsync prevents data loss on crash
//
// AtomicWriteFile writes data to a file atomically:
//  1. Write to a temporary file in the same directory
//  2. Sync the data to disk using fsync
//  3. Close the file
//  4. Atomically rename the temp file to the target path
//
// Either the old file or the new complete file exists after a crash; the
// file is never observed partially written. The user ID file depends on
// this: a torn write there would regenerate the identity on next start.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	// Temp file must live in the same directory so the rename is atomic
	// on the same filesystem.
	f, err := os.CreateTemp(dir, ".tmp-")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := f.Name()

	success := false
	defer func() {
		if !success {
			f.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	// RELIABILITY: Sync to disk before rename.
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync data to disk: %w", err)
	}

	// Close before rename - required on some systems (Windows).
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tempPath, perm); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
