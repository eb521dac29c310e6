// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState    = errors.New("invalid attendance state")
	ErrInvalidCategory = errors.New("invalid attendance category")
)

// State is a student's attendance value for the current roll
type State string

const (
	Unmarked State = "unmark"
	Present  State = "present"
	Late     State = "late"
	Absent   State = "absent"
)

// States returns every state in report order
func States() []State {
	return []State{Unmarked, Present, Late, Absent}
}

// Valid reports whether s is one of the known states
func (s State) Valid() bool {
	switch s {
	case Unmarked, Present, Late, Absent:
		return true
	}
	return false
}

// Next returns the state a single click moves s to.
// Unmarked and Absent both restart the cycle at Present.
func Next(s State) State {
	switch s {
	case Present:
		return Late
	case Late:
		return Absent
	default:
		return Present
	}
}

// Parse converts a wire value into a State.
// The empty string is treated as Unmarked.
func Parse(v string) (State, error) {
	if v == "" {
		return Unmarked, nil
	}
	s := State(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidState, v)
	}
	return s, nil
}

func (s State) String() string {
	return string(s)
}

func (s State) MarshalText() ([]byte, error) {
	if s == "" {
		return []byte(Unmarked), nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, string(s))
	}
	return []byte(s), nil
}

func (s *State) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Category selects either every student or those in a single state
type Category string

const All Category = "all"

// Categories returns the report categories, All first
func Categories() []Category {
	cats := []Category{All}
	for _, s := range States() {
		cats = append(cats, Category(s))
	}
	return cats
}

// CategoryOf returns the category that holds exactly the students in s
func CategoryOf(s State) Category {
	return Category(s)
}

// ParseCategory converts a wire value into a Category
func ParseCategory(v string) (Category, error) {
	if v == string(All) {
		return All, nil
	}
	s := State(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, v)
	}
	return Category(s), nil
}

// State returns the state a non-All category stands for
func (c Category) State() (State, bool) {
	if c == All {
		return "", false
	}
	s := State(c)
	return s, s.Valid()
}

// Matches reports whether a student in state s belongs to c
func (c Category) Matches(s State) bool {
	if c == All {
		return true
	}
	if s == "" {
		s = Unmarked
	}
	return State(c) == s
}

func (c Category) String() string {
	return string(c)
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
