// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package attendance defines the attendance states a student can be in during a
roll and the rule for moving between them.

# States

	Unmarked = "unmark"
	Present  = "present"
	Late     = "late"
	Absent   = "absent"

Every student starts Unmarked unless the backend returned a prior value.

# Transitions

Clicking a student advances the state with Next:

	unmark  → present
	present → late
	late    → absent
	absent  → present

Unmarked and Absent both reset to Present, so after the first click the
cycle is present → late → absent → present. No state is terminal.

# Categories

A Category is either All or one of the states. Categories drive the list
filter and the attendance report:

	cat, err := attendance.ParseCategory("late")
	if cat.Matches(student.Attendance) { ... }
*/
package attendance
