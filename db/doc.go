// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the backing database and manages its schema.

# Drivers

Open picks the driver from the configured database type:

  - sqlite: modernc.org/sqlite (pure Go), foreign keys on, one connection
  - postgres: github.com/lib/pq

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Queries are written with ? placeholders. Rebind rewrites them to $1, $2, ...
when running on postgres:

	conn.QueryRow(db.Rebind(cfg.DatabaseType, "SELECT ... WHERE id = ?"), id)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - student: roster in insertion order (position) with the latest recorded attendance
  - roll: one row per saved roll
  - roll_entry: each student's state within a roll

# Relationships

	roll 1──* roll_entry *──1 student

All foreign keys use ON DELETE CASCADE.

# Seeding

SeedStudents fills an empty roster with demo students for local use.
*/
package db
