// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the homeboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Roster:

	GET  /get-homeboard-students - Roster with current attendance
	POST /students               - Add a student

Rolls:

	POST /save-roll      - Commit a completed roll
	GET  /get-activities - Saved rolls, newest first

The endpoint names match what the board passes to PerformAction, so a
backend.Client pointed at this server needs no routing table of its own.
*/
package router
