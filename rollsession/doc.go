// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package rollsession runs a board: the roster, the list filter, the attendance
report and the roll itself.

# Roll Session

A Session moves between two states:

	Idle → Active  (Start)
	Active → Idle  (Exit)

Exit does not undo anything. Attendance marked during the roll stays in the
roster, so a later Start picks up where the last one left off.

Complete submits the roster snapshot to the backend's save-roll endpoint. It
only works while Active and leaves the session Active on both success and
failure; the caller decides when to Exit. A failed save comes back as a
*SaveError and is never retried.

# Board

Board is the single writer for one roster. A rendering layer sends it
intents and reads back a ViewModel:

	board := rollsession.NewBoard(client)
	if err := board.Load(ctx); err != nil { ... }

	board.Dispatch(ctx, rollsession.StartRoll{})
	board.Dispatch(ctx, rollsession.ToggleStudentAttendance{StudentID: id})
	vm := board.View()

Filter intents rerun the view pipeline and the report. A toggle updates the
roster and recounts the students already on screen without filtering again,
so a student does not disappear from a category view the moment they are
clicked.

Board is not safe for concurrent use. All intents must come from one
goroutine, in order.
*/
package rollsession
