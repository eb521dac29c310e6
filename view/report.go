// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"github.com/danielhkuo/homeboard/attendance"
	"github.com/danielhkuo/homeboard/models"
)

type ReportEntry struct {
	Category attendance.Category `json:"type"`
	Count    int                 `json:"count"`
}

// Report holds per-category counts for one filtered sequence
type Report struct {
	Entries []ReportEntry `json:"entries"`
	Total   int           `json:"total"`
	Marked  int           `json:"marked"`
}

// Recompute counts a filtered sequence from scratch
func Recompute(filtered []*models.Student) Report {
	counts := make(map[attendance.State]int, len(attendance.States()))
	for _, st := range filtered {
		s := st.Attendance
		if s == "" {
			s = attendance.Unmarked
		}
		counts[s]++
	}

	r := Report{Total: len(filtered)}
	r.Entries = append(r.Entries, ReportEntry{Category: attendance.All, Count: r.Total})
	for _, s := range attendance.States() {
		r.Entries = append(r.Entries, ReportEntry{Category: attendance.CategoryOf(s), Count: counts[s]})
		if s != attendance.Unmarked {
			r.Marked += counts[s]
		}
	}
	return r
}

// Count returns the count for c, or 0 when c is not in the report
func (r Report) Count(c attendance.Category) int {
	for _, e := range r.Entries {
		if e.Category == c {
			return e.Count
		}
	}
	return 0
}
