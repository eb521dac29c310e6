// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Homeboard API server.

Homeboard is a classroom attendance board. Staff load a roster, start a roll,
cycle each student through unmark → present → late → absent, and save the
completed roll. This binary serves the backend half; the session engine lives
in the rollsession package and talks to this server through backend.Client.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Settings are read from a .env file, then the environment, then flags:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): File path for sqlite (default: homeboard.db),
    connection string for postgres (required)
  - SEED_STUDENTS (-seed): Demo students to insert into an empty roster

# Architecture

  - attendance: Attendance states, the toggle cycle, report categories
  - roster: In-memory roster store
  - view: Filter/sort pipeline and attendance report
  - rollsession: Roll session and the Board that applies UI intents
  - backend: performAction collaborator and its HTTP client
  - handlers: HTTP request handlers (students, rolls)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Wire types
  - db: Connection, schema, seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
