// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/danielhkuo/homeboard/attendance"
	"github.com/danielhkuo/homeboard/models"
)

var (
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidDirection = errors.New("invalid sort direction")
)

// SortKey names a sortable student field
type SortKey string

const (
	SortFirstName SortKey = "first_name"
	SortLastName  SortKey = "last_name"
)

// Direction scales the comparator: +1 ascending, -1 descending
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

var comparators = map[SortKey]func(a, b *models.Student) int{
	SortFirstName: func(a, b *models.Student) int { return strings.Compare(a.FirstName, b.FirstName) },
	SortLastName:  func(a, b *models.Student) int { return strings.Compare(a.LastName, b.LastName) },
}

// ParseSortKey converts a wire value into a SortKey
func ParseSortKey(v string) (SortKey, error) {
	k := SortKey(v)
	if _, ok := comparators[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, v)
	}
	return k, nil
}

func (k SortKey) Valid() bool {
	_, ok := comparators[k]
	return ok
}

func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// Filter is the transient list state owned by a board
type Filter struct {
	SearchText string              `json:"search_text"`
	SortKey    SortKey             `json:"sort_key"`
	Direction  Direction           `json:"sort_direction"`
	Category   attendance.Category `json:"category"`
}

// DefaultFilter shows everyone by first name, ascending
func DefaultFilter() Filter {
	return Filter{
		SortKey:   SortFirstName,
		Direction: Ascending,
		Category:  attendance.All,
	}
}

// Validate checks that every field holds a supported value
func (f Filter) Validate() error {
	if !f.SortKey.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, string(f.SortKey))
	}
	if !f.Direction.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(f.Direction))
	}
	if _, err := attendance.ParseCategory(string(f.Category)); err != nil {
		return err
	}
	return nil
}

// Apply derives the displayed sequence from the roster.
// The result is a new slice; its elements are the roster's own records.
func Apply(roster []*models.Student, f Filter) []*models.Student {
	return sortStudents(search(byCategory(roster, f.Category), f.SearchText), f.SortKey, f.Direction)
}

func byCategory(students []*models.Student, c attendance.Category) []*models.Student {
	out := make([]*models.Student, 0, len(students))
	for _, st := range students {
		if c == "" || c.Matches(st.Attendance) {
			out = append(out, st)
		}
	}
	return out
}

func search(students []*models.Student, text string) []*models.Student {
	if text == "" {
		return students
	}

	// A Caser keeps state, so each search gets its own
	fold := cases.Fold()
	needle := fold.String(text)

	out := make([]*models.Student, 0, len(students))
	for _, st := range students {
		if strings.Contains(fold.String(st.FirstName), needle) {
			out = append(out, st)
		}
	}
	return out
}

func sortStudents(students []*models.Student, key SortKey, dir Direction) []*models.Student {
	cmp, ok := comparators[key]
	if !ok {
		cmp = comparators[SortFirstName]
	}
	if !dir.Valid() {
		dir = Ascending
	}

	out := make([]*models.Student, len(students))
	copy(out, students)

	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j])*int(dir) < 0
	})
	return out
}
