// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The same DDL runs on sqlite and postgres
const schema = `
-- Students
CREATE TABLE IF NOT EXISTS student (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    attendance TEXT NOT NULL DEFAULT 'unmark' CHECK (attendance IN ('unmark', 'present', 'late', 'absent')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_student_position ON student(position);

-- Rolls
CREATE TABLE IF NOT EXISTS roll (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    completed_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_roll_completed_at ON roll(completed_at);

-- Roll Entries
CREATE TABLE IF NOT EXISTS roll_entry (
    roll_id TEXT NOT NULL REFERENCES roll(id) ON DELETE CASCADE,
    student_id TEXT NOT NULL REFERENCES student(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    state TEXT NOT NULL CHECK (state IN ('unmark', 'present', 'late', 'absent')),
    PRIMARY KEY (roll_id, student_id)
);

CREATE INDEX IF NOT EXISTS idx_roll_entry_student_id ON roll_entry(student_id);
`
