// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster holds the canonical list of students for a board.

The Store is the only owner of student records. Everything else reads them
through All, which hands out pointers to the same records so an attendance
change made through SetAttendance is visible to every derived view without
copying.

# Loading

	store := roster.NewStore()
	if err := store.LoadResponse(raw); err != nil {
		var loadErr *roster.LoadError
		errors.As(err, &loadErr)
	}

A failed load clears the store; there is never a stale roster behind an
error.

# Mutation

	store.SetAttendance(id, attendance.Present)

An unknown id is ignored and reported by the boolean result. UI events can
race a reload, so this is not an error.

The Store is not safe for concurrent use. It is owned by a single board and
mutated from one goroutine.
*/
package roster
