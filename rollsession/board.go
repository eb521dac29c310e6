// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rollsession

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/homeboard/attendance"
	"github.com/danielhkuo/homeboard/backend"
	"github.com/danielhkuo/homeboard/models"
	"github.com/danielhkuo/homeboard/roster"
	"github.com/danielhkuo/homeboard/view"
)

// LoadState is where the board is in fetching its roster
type LoadState string

const (
	Loading LoadState = "loading"
	Loaded  LoadState = "loaded"
	Failed  LoadState = "error"
)

// ViewModel is everything a renderer needs, copied out of the board
type ViewModel struct {
	LoadState             LoadState        `json:"load_state"`
	LoadErr               error            `json:"-"`
	Students              []models.Student `json:"students"`
	Report                view.Report      `json:"report"`
	RollMode              bool             `json:"roll_mode"`
	CategoryFilterEnabled bool             `json:"category_filter_enabled"`
	Filter                view.Filter      `json:"filter"`
}

type Board struct {
	backend backend.Backend
	store   *roster.Store
	session *Session
	filter  view.Filter

	visible []*models.Student
	report  view.Report

	loadState LoadState
	loadErr   error
}

func NewBoard(b backend.Backend) *Board {
	board := &Board{
		backend:   b,
		store:     roster.NewStore(),
		session:   NewSession(),
		filter:    view.DefaultFilter(),
		loadState: Loading,
	}
	board.refresh()
	return board
}

// Load fetches the roster. On failure the board is left empty in the error state.
func (b *Board) Load(ctx context.Context) error {
	b.loadState = Loading
	b.loadErr = nil

	raw, err := b.backend.PerformAction(ctx, models.EndpointGetStudents, nil)
	if err == nil {
		err = b.store.LoadResponse(raw)
	} else {
		b.store.Clear()
		err = &roster.LoadError{Reason: "request failed", Err: err}
	}

	if err != nil {
		slog.Warn("roster load failed", "error", err)
		b.loadState = Failed
		b.loadErr = err
		b.refresh()
		return err
	}

	b.loadState = Loaded
	b.refresh()
	slog.Debug("roster loaded", "students", b.store.Len())
	return nil
}

// Dispatch applies one UI intent
func (b *Board) Dispatch(ctx context.Context, in Intent) error {
	switch in := in.(type) {
	case StartRoll:
		b.StartRoll()
	case ExitRoll:
		b.ExitRoll()
	case CompleteRoll:
		return b.CompleteRoll(ctx)
	case SetSort:
		return b.SetSort(in.Direction)
	case SetFilterKey:
		return b.SetFilterKey(in.Key)
	case SetSearchText:
		b.SetSearchText(in.Text)
	case SetCategoryFilter:
		return b.SetCategoryFilter(in.Category)
	case ToggleStudentAttendance:
		b.Toggle(in.StudentID)
	default:
		return fmt.Errorf("unsupported intent %T", in)
	}
	return nil
}

func (b *Board) StartRoll() {
	b.session.Start()
}

// ExitRoll hides the roll. Attendance and filters are kept.
func (b *Board) ExitRoll() {
	b.session.Exit()
}

// CompleteRoll submits the current roster, including unsaved local edits
func (b *Board) CompleteRoll(ctx context.Context) error {
	if _, err := b.session.Complete(ctx, b.backend, b.store.Snapshot()); err != nil {
		slog.Warn("roll not saved", "error", err)
		return err
	}
	slog.Info("roll saved", "students", b.store.Len())
	return nil
}

func (b *Board) SetSort(d view.Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", view.ErrInvalidDirection, int(d))
	}
	b.filter.Direction = d
	b.refresh()
	return nil
}

func (b *Board) SetFilterKey(k view.SortKey) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %q", view.ErrInvalidSortKey, string(k))
	}
	b.filter.SortKey = k
	b.refresh()
	return nil
}

func (b *Board) SetSearchText(text string) {
	b.filter.SearchText = text
	b.refresh()
}

// SetCategoryFilter narrows the list to one attendance category.
// Only available during a roll.
func (b *Board) SetCategoryFilter(c attendance.Category) error {
	if !b.session.Active() {
		return ErrNotActive
	}
	if _, err := attendance.ParseCategory(string(c)); err != nil {
		return err
	}
	b.filter.Category = c
	b.refresh()
	return nil
}

// Toggle advances one student's attendance and recounts the visible list.
// Unknown ids are ignored.
func (b *Board) Toggle(studentID string) (attendance.State, bool) {
	st, ok := b.store.Get(studentID)
	if !ok {
		slog.Debug("ignoring attendance toggle for unknown student", "student_id", studentID)
		return "", false
	}

	next := attendance.Next(st.Attendance)
	b.store.SetAttendance(studentID, next)
	b.report = view.Recompute(b.visible)
	return next, true
}

// View copies the current state out for rendering
func (b *Board) View() ViewModel {
	students := make([]models.Student, len(b.visible))
	for i, st := range b.visible {
		students[i] = *st
	}

	report := b.report
	report.Entries = append([]view.ReportEntry(nil), b.report.Entries...)

	return ViewModel{
		LoadState:             b.loadState,
		LoadErr:               b.loadErr,
		Students:              students,
		Report:                report,
		RollMode:              b.session.Active(),
		CategoryFilterEnabled: b.session.Active(),
		Filter:                b.filter,
	}
}

// Session exposes the roll state for inspection
func (b *Board) Session() *Session {
	return b.session
}

// Roster returns the full roster as value copies
func (b *Board) Roster() []models.Student {
	return b.store.Snapshot()
}

func (b *Board) refresh() {
	b.visible = view.Apply(b.store.All(), b.filter)
	b.report = view.Recompute(b.visible)
}
