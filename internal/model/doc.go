// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat transcripts.
//
// A transcript is an append-only sequence of Message values. Messages are
// never reordered or mutated after they are appended; insertion order is
// display order. The package also provides the gesture-span splitter used
// by the presentation layer: reply text may embed stage directions wrapped
// in asterisks ("*kneads clay*") which are rendered with emphasis but
// carry no meaning to the controller.
package model
