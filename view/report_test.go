// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"testing"

	"github.com/danielhkuo/homeboard/attendance"
	"github.com/danielhkuo/homeboard/models"
)

func TestRecompute(t *testing.T) {
	report := Recompute(classroom())

	want := map[attendance.Category]int{
		attendance.All:                             5,
		attendance.CategoryOf(attendance.Unmarked): 1,
		attendance.CategoryOf(attendance.Present):  2,
		attendance.CategoryOf(attendance.Late):     1,
		attendance.CategoryOf(attendance.Absent):   1,
	}
	for cat, n := range want {
		if got := report.Count(cat); got != n {
			t.Errorf("%s: expected %d, got %d", cat, n, got)
		}
	}

	if report.Total != 5 {
		t.Errorf("Expected total 5, got %d", report.Total)
	}
	if report.Marked != 4 {
		t.Errorf("Expected marked 4, got %d", report.Marked)
	}

	// Fixed order: all first, then every state
	order := attendance.Categories()
	if len(report.Entries) != len(order) {
		t.Fatalf("Expected %d entries, got %d", len(order), len(report.Entries))
	}
	for i, c := range order {
		if report.Entries[i].Category != c {
			t.Errorf("Entry %d: expected %s, got %s", i, c, report.Entries[i].Category)
		}
	}
}

func TestRecomputeSumsToFilteredLength(t *testing.T) {
	filters := []Filter{
		DefaultFilter(),
		{SearchText: "an", SortKey: SortFirstName, Direction: Ascending, Category: attendance.All},
		{SortKey: SortFirstName, Direction: Ascending, Category: attendance.CategoryOf(attendance.Present)},
		{SortKey: SortFirstName, Direction: Ascending, Category: attendance.CategoryOf(attendance.Unmarked)},
	}

	for _, f := range filters {
		filtered := Apply(classroom(), f)
		report := Recompute(filtered)

		sum := 0
		for _, e := range report.Entries {
			if e.Category != attendance.All {
				sum += e.Count
			}
		}
		if sum != len(filtered) {
			t.Errorf("Filter %+v: counts sum to %d, filtered length is %d", f, sum, len(filtered))
		}
	}
}

func TestRecomputeEmpty(t *testing.T) {
	filtered := Apply(classroom(), Filter{SearchText: "nobody", SortKey: SortFirstName, Direction: Ascending, Category: attendance.All})
	report := Recompute(filtered)

	for _, e := range report.Entries {
		if e.Count != 0 {
			t.Errorf("%s: expected 0, got %d", e.Category, e.Count)
		}
	}
}

func TestRecomputeReturnsFreshReport(t *testing.T) {
	roster := students(models.Student{ID: "1", FirstName: "Bob"})

	before := Recompute(roster)
	roster[0].Attendance = attendance.Present
	after := Recompute(roster)

	if before.Count(attendance.CategoryOf(attendance.Present)) != 0 {
		t.Error("Earlier report changed after a later recompute")
	}
	if after.Count(attendance.CategoryOf(attendance.Present)) != 1 {
		t.Errorf("Expected present 1, got %d", after.Count(attendance.CategoryOf(attendance.Present)))
	}
}
