// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// TURN TYPE
// =============================================================================

// Turn is one archived question/reply pair.
type Turn struct {
	ID       int64     `json:"id"`
	UserID   string    `json:"user_id"`
	Question string    `json:"question"`
	Reply    string    `json:"reply"`
	Fallback bool      `json:"fallback"`
	AskedAt  time.Time `json:"asked_at"`
}

// =============================================================================
// STORE
// =============================================================================

// Store is the SQLite-backed turn archive.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS turns (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id   TEXT NOT NULL,
	question  TEXT NOT NULL,
	reply     TEXT NOT NULL,
	fallback  INTEGER NOT NULL DEFAULT 0,
	asked_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_turns_asked_at ON turns(asked_at);
`

// Open opens (creating if needed) the archive at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// Single writer, short transactions: WAL keeps readers unblocked.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// WRITE OPERATIONS
// =============================================================================

// Record archives one completed turn and returns its row ID.
func (s *Store) Record(t Turn) (int64, error) {
	if t.AskedAt.IsZero() {
		t.AskedAt = time.Now()
	}

	res, err := s.db.Exec(
		"INSERT INTO turns (user_id, question, reply, fallback, asked_at) VALUES (?, ?, ?, ?, ?)",
		t.UserID, t.Question, t.Reply, boolToInt(t.Fallback), t.AskedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record turn: %w", err)
	}
	return res.LastInsertId()
}

// Clear deletes all archived turns.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM turns"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// Recent returns up to limit turns, newest first.
func (s *Store) Recent(limit int) ([]Turn, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		"SELECT id, user_id, question, reply, fallback, asked_at FROM turns ORDER BY asked_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanTurns(rows)
}

// All returns every archived turn, newest first. Used by export.
func (s *Store) All() ([]Turn, error) {
	rows, err := s.db.Query(
		"SELECT id, user_id, question, reply, fallback, asked_at FROM turns ORDER BY asked_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanTurns(rows)
}

// Search returns turns whose question or reply contains the query,
// case-insensitively, newest first.
func (s *Store) Search(query string, limit int) ([]Turn, error) {
	if limit <= 0 {
		limit = 50
	}
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := s.db.Query(
		`SELECT id, user_id, question, reply, fallback, asked_at FROM turns
		 WHERE lower(question) LIKE ? OR lower(reply) LIKE ?
		 ORDER BY asked_at DESC, id DESC LIMIT ?`,
		pattern, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	defer rows.Close()

	return scanTurns(rows)
}

// Count returns the number of archived turns.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM turns").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}

func scanTurns(rows *sql.Rows) ([]Turn, error) {
	var turns []Turn
	for rows.Next() {
		var t Turn
		var fb int
		var askedAt int64
		if err := rows.Scan(&t.ID, &t.UserID, &t.Question, &t.Reply, &fb, &askedAt); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		t.Fallback = fb != 0
		t.AskedAt = time.Unix(askedAt, 0)
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// =============================================================================
// EXPORT
// =============================================================================

// ExportMarkdown renders turns as a Markdown document, oldest first.
func ExportMarkdown(turns []Turn) string {
	var sb strings.Builder
	sb.WriteString("# Adam chat history\n\n")

	for i := len(turns) - 1; i >= 0; i-- {
		t := turns[i]
		sb.WriteString("**You** (" + t.AskedAt.Format("2006-01-02 15:04") + "):\n\n")
		sb.WriteString(t.Question)
		sb.WriteString("\n\n**Adam**")
		if t.Fallback {
			sb.WriteString(" (offline reply)")
		}
		sb.WriteString(":\n\n")
		sb.WriteString(t.Reply)
		sb.WriteString("\n\n---\n\n")
	}

	return sb.String()
}

// ExportJSON renders turns as pretty-printed JSON.
func ExportJSON(turns []Turn) ([]byte, error) {
	return json.MarshalIndent(turns, "", "  ")
}
