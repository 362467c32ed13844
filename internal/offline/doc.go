// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package offline implements the switchable offline mode.
//
// When offline mode is enabled the backend client refuses to place the
// network call and every turn settles through the canned-reply table.
// This is the same code path the session controller takes on a real
// transport failure, made deliberately reachable for air-gapped use or
// for trying the client without a backend.
package offline
