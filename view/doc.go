// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package view derives what the board shows from the canonical roster.

# Pipeline

Apply runs three stages, always in this order and always from the full
roster:

 1. Category: keep students whose attendance matches Filter.Category
    (All keeps everyone).
 2. Search: keep students whose first name contains Filter.SearchText,
    compared with Unicode case folding. Empty text keeps everyone.
 3. Sort: stable sort by Filter.SortKey, scaled by Filter.Direction.
    Students with equal keys keep their roster order.

Nothing is cached between runs, so changing one filter dimension never
compounds with an earlier narrowed list. Running Apply twice with the same
inputs yields the same sequence.

# Report

Recompute counts the students of a filtered sequence per attendance
category and returns a new Report every time:

	visible := view.Apply(store.All(), filter)
	report := view.Recompute(visible)
	report.Count(attendance.CategoryOf(attendance.Present))

Total is the size of the sequence and Marked is present+late+absent. The
"all" entry carries Total; renderers that want the marked count use Marked.
*/
package view
