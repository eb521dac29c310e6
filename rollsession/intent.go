// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rollsession

import (
	"github.com/danielhkuo/homeboard/attendance"
	"github.com/danielhkuo/homeboard/view"
)

// Intent is a user action emitted by the rendering layer
type Intent interface {
	intent()
}

type StartRoll struct{}

type ExitRoll struct{}

type CompleteRoll struct{}

type SetSort struct {
	Direction view.Direction
}

type SetFilterKey struct {
	Key view.SortKey
}

type SetSearchText struct {
	Text string
}

type SetCategoryFilter struct {
	Category attendance.Category
}

type ToggleStudentAttendance struct {
	StudentID string
}

func (StartRoll) intent()               {}
func (ExitRoll) intent()                {}
func (CompleteRoll) intent()            {}
func (SetSort) intent()                 {}
func (SetFilterKey) intent()            {}
func (SetSearchText) intent()           {}
func (SetCategoryFilter) intent()       {}
func (ToggleStudentAttendance) intent() {}
