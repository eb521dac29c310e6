// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/homeboard/attendance"
	"github.com/danielhkuo/homeboard/models"
)

// LoadError reports a roster response that could not be used
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("roster load failed: %s: %v", e.Reason, e.Err)
	}
	return "roster load failed: " + e.Reason
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type Store struct {
	students []*models.Student
	byID     map[string]*models.Student
}

func NewStore() *Store {
	return &Store{byID: map[string]*models.Student{}}
}

// Load replaces the roster wholesale, keeping the given order
func (s *Store) Load(students []models.Student) error {
	next := make([]*models.Student, 0, len(students))
	byID := make(map[string]*models.Student, len(students))

	for i := range students {
		st := students[i]
		if st.ID == "" {
			s.Clear()
			return &LoadError{Reason: fmt.Sprintf("student at index %d has no id", i)}
		}
		if _, dup := byID[st.ID]; dup {
			s.Clear()
			return &LoadError{Reason: fmt.Sprintf("duplicate student id %q", st.ID)}
		}
		if st.Attendance == "" {
			st.Attendance = attendance.Unmarked
		}
		if !st.Attendance.Valid() {
			s.Clear()
			return &LoadError{Reason: fmt.Sprintf("student %q", st.ID), Err: attendance.ErrInvalidState}
		}
		next = append(next, &st)
		byID[st.ID] = &st
	}

	s.students = next
	s.byID = byID
	return nil
}

// LoadResponse decodes a get-homeboard-students payload and loads it.
// Anything other than {"result": {"students": [...]}} is a LoadError.
func (s *Store) LoadResponse(raw []byte) error {
	var envelope struct {
		Result *struct {
			Students *[]models.Student `json:"students"`
		} `json:"result"`
	}

	if err := json.Unmarshal(raw, &envelope); err != nil {
		s.Clear()
		return &LoadError{Reason: "malformed response", Err: err}
	}
	if envelope.Result == nil {
		s.Clear()
		return &LoadError{Reason: "response has no result"}
	}
	if envelope.Result.Students == nil {
		s.Clear()
		return &LoadError{Reason: "response has no student list"}
	}

	return s.Load(*envelope.Result.Students)
}

// Clear drops every student
func (s *Store) Clear() {
	s.students = nil
	s.byID = map[string]*models.Student{}
}

// SetAttendance overwrites one student's state.
// Returns false when the id is unknown; nothing changes in that case.
func (s *Store) SetAttendance(id string, state attendance.State) bool {
	st, ok := s.byID[id]
	if !ok {
		return false
	}
	st.Attendance = state
	return true
}

// Get returns the record for id
func (s *Store) Get(id string) (*models.Student, bool) {
	st, ok := s.byID[id]
	return st, ok
}

// All returns the canonical sequence. Callers must not modify the slice or the records.
func (s *Store) All() []*models.Student {
	return s.students
}

func (s *Store) Len() int {
	return len(s.students)
}

// Snapshot copies the roster as it is right now
func (s *Store) Snapshot() []models.Student {
	out := make([]models.Student, len(s.students))
	for i, st := range s.students {
		out[i] = *st
	}
	return out
}
