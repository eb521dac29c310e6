// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: sqlite file path or PostgreSQL connection string
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SeedStudents: number of demo students to insert into an empty roster

# Sources

Values are read in this order, later sources winning:

 1. a .env file in the working directory, if present
 2. environment variables
 3. CLI flags

# CLI Flags

	-p     Server port
	-d     Database URL
	-t     Database type
	-seed  Seed student count

# Environment Variables

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SEED_STUDENTS → -seed

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is missing for postgres (sqlite defaults to homeboard.db)
  - the port is outside 1-65535
*/
package cliparse
