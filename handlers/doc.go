// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the homeboard API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - StudentHandler: roster listing and student creation
  - RollHandler: roll submission and the activity feed

Handlers are created via constructor functions that accept *sql.DB and Config:

	rollHandler := handlers.NewRollHandler(db, cfg)

# Roster

	GET  /get-homeboard-students → GetHomeboardStudents
	POST /students               → CreateStudent

The roster is returned in insertion order wrapped as
{"success": true, "result": {"students": [...]}}. Each student carries the
attendance recorded by the most recent saved roll, or "unmark".

# Rolls

	POST /save-roll      → SaveRoll
	GET  /get-activities → GetActivities

SaveRoll takes {"students": [...]} and, in one transaction, records the roll,
one entry per student, and each student's current attendance. Unknown or
duplicate student ids reject the whole roll.
*/
package handlers
