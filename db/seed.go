// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	seedFirstNames = []string{"Ann", "Bob", "Cara", "Dev", "Ella", "Finn", "Gia", "Hugo", "Iris", "Jack", "Kira", "Liam", "Maya", "Noah"}
	seedLastNames  = []string{"Adams", "Bell", "Cole", "Diaz", "Evans", "Ford", "Gray", "Hill", "Irwin", "Jones", "Khan", "Lopez", "Marsh"}
)

// SeedStudents inserts n demo students if the roster is empty.
// Returns how many were inserted.
func SeedStudents(conn *sql.DB, dbType string, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	var existing int
	if err := conn.QueryRow("SELECT COUNT(*) FROM student").Scan(&existing); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	tx, err := conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := Rebind(dbType, `
		INSERT INTO student (id, position, first_name, last_name, attendance, created_at)
		VALUES (?, ?, ?, ?, 'unmark', ?)
	`)
	now := time.Now()
	for i := 0; i < n; i++ {
		first := seedFirstNames[i%len(seedFirstNames)]
		last := seedLastNames[(i*7+i/len(seedFirstNames))%len(seedLastNames)]
		if _, err := tx.Exec(insert, uuid.NewString(), i+1, first, last, now); err != nil {
			return 0, fmt.Errorf("failed to seed student: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return n, nil
}
