// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package identity manages the persistent per-installation user ID.
//
// The Adam backend tracks conversations by a client-chosen identifier.
// The browser widget keeps it under the "adam_user_id" localStorage key;
// adam-tui keeps the same value in a file under the data directory.
// The ID is generated exactly once (time component plus UUID randomness)
// and never regenerated while the file exists.
package identity
