// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"errors"
	"testing"

	"github.com/danielhkuo/homeboard/attendance"
	"github.com/danielhkuo/homeboard/models"
)

func students(list ...models.Student) []*models.Student {
	out := make([]*models.Student, len(list))
	for i := range list {
		st := list[i]
		if st.Attendance == "" {
			st.Attendance = attendance.Unmarked
		}
		out[i] = &st
	}
	return out
}

func ids(list []*models.Student) []string {
	out := make([]string, len(list))
	for i, st := range list {
		out[i] = st.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func classroom() []*models.Student {
	return students(
		models.Student{ID: "1", FirstName: "Cara", LastName: "Adams", Attendance: attendance.Present},
		models.Student{ID: "2", FirstName: "Ann", LastName: "Young", Attendance: attendance.Absent},
		models.Student{ID: "3", FirstName: "bob", LastName: "Marsh"},
		models.Student{ID: "4", FirstName: "Anna", LastName: "Cole", Attendance: attendance.Late},
		models.Student{ID: "5", FirstName: "ANNIE", LastName: "Bell", Attendance: attendance.Present},
	)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "default sorts by first name",
			filter: DefaultFilter(),
			// byte order puts upper case first
			want: []string{"5", "2", "4", "1", "3"},
		},
		{
			name:   "descending",
			filter: Filter{SortKey: SortFirstName, Direction: Descending, Category: attendance.All},
			want:   []string{"3", "1", "4", "2", "5"},
		},
		{
			name:   "last name",
			filter: Filter{SortKey: SortLastName, Direction: Ascending, Category: attendance.All},
			want:   []string{"1", "5", "4", "3", "2"},
		},
		{
			name:   "category",
			filter: Filter{SortKey: SortFirstName, Direction: Ascending, Category: attendance.CategoryOf(attendance.Present)},
			want:   []string{"5", "1"},
		},
		{
			name:   "case-insensitive search",
			filter: Filter{SearchText: "an", SortKey: SortFirstName, Direction: Ascending, Category: attendance.All},
			want:   []string{"5", "2", "4"},
		},
		{
			name:   "search then category",
			filter: Filter{SearchText: "AN", SortKey: SortLastName, Direction: Ascending, Category: attendance.CategoryOf(attendance.Present)},
			want:   []string{"5"},
		},
		{
			name:   "empty category",
			filter: Filter{SortKey: SortFirstName, Direction: Ascending, Category: attendance.CategoryOf(attendance.Absent)},
			want:   []string{"2"},
		},
		{
			name:   "search matches nobody",
			filter: Filter{SearchText: "zz", SortKey: SortFirstName, Direction: Ascending, Category: attendance.All},
			want:   []string{},
		},
		{
			name:   "search is on first name only",
			filter: Filter{SearchText: "adams", SortKey: SortFirstName, Direction: Ascending, Category: attendance.All},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(classroom(), tt.filter))
			if !equalIDs(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApplyIsStable(t *testing.T) {
	roster := students(
		models.Student{ID: "A", FirstName: "Ann"},
		models.Student{ID: "B", FirstName: "Ann"},
	)

	got := ids(Apply(roster, DefaultFilter()))
	if !equalIDs(got, []string{"A", "B"}) {
		t.Errorf("Expected ties to keep input order, got %v", got)
	}

	desc := DefaultFilter()
	desc.Direction = Descending
	got = ids(Apply(roster, desc))
	if !equalIDs(got, []string{"A", "B"}) {
		t.Errorf("Expected ties to keep input order when descending, got %v", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	filters := []Filter{
		DefaultFilter(),
		{SearchText: "an", SortKey: SortLastName, Direction: Descending, Category: attendance.All},
		{SortKey: SortFirstName, Direction: Ascending, Category: attendance.CategoryOf(attendance.Present)},
	}

	for _, f := range filters {
		once := Apply(classroom(), f)
		twice := Apply(once, f)
		if !equalIDs(ids(once), ids(twice)) {
			t.Errorf("Filter %+v: expected %v, got %v", f, ids(once), ids(twice))
		}
	}
}

func TestApplySharesRecords(t *testing.T) {
	roster := classroom()
	visible := Apply(roster, DefaultFilter())

	roster[2].Attendance = attendance.Late
	for _, st := range visible {
		if st.ID == "3" && st.Attendance != attendance.Late {
			t.Error("Expected the view to reference the roster's records")
		}
	}
}

func TestApplyDoesNotReorderRoster(t *testing.T) {
	roster := classroom()
	Apply(roster, Filter{SortKey: SortLastName, Direction: Descending, Category: attendance.All})

	if !equalIDs(ids(roster), []string{"1", "2", "3", "4", "5"}) {
		t.Errorf("Roster order changed: %v", ids(roster))
	}
}

func TestParseSortKey(t *testing.T) {
	if k, err := ParseSortKey("last_name"); err != nil || k != SortLastName {
		t.Errorf("Expected last_name, got %q (%v)", k, err)
	}
	if _, err := ParseSortKey("photo_url"); !errors.Is(err, ErrInvalidSortKey) {
		t.Errorf("Expected ErrInvalidSortKey, got %v", err)
	}
}

func TestFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantErr error
	}{
		{"default", DefaultFilter(), nil},
		{"bad key", Filter{SortKey: "age", Direction: Ascending, Category: attendance.All}, ErrInvalidSortKey},
		{"bad direction", Filter{SortKey: SortFirstName, Direction: 0, Category: attendance.All}, ErrInvalidDirection},
		{"bad category", Filter{SortKey: SortFirstName, Direction: Ascending, Category: "excused"}, attendance.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
