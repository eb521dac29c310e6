// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rollsession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielhkuo/homeboard/backend"
	"github.com/danielhkuo/homeboard/models"
)

var ErrNotActive = errors.New("roll is not active")

// SaveError reports a roll submission the backend did not accept
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save roll: %v", e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

type State string

const (
	Idle   State = "idle"
	Active State = "active"
)

// Session tracks whether a roll is in progress
type Session struct {
	state State
	saved int
}

func NewSession() *Session {
	return &Session{state: Idle}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Active() bool {
	return s.state == Active
}

// Saved returns how many rolls this session completed successfully
func (s *Session) Saved() int {
	return s.saved
}

// Start enters roll mode. Starting an active session is a no-op.
func (s *Session) Start() {
	s.state = Active
}

// Exit leaves roll mode without touching attendance
func (s *Session) Exit() {
	s.state = Idle
}

// Complete posts the snapshot to save-roll and returns the raw response.
// The session stays Active either way.
func (s *Session) Complete(ctx context.Context, b backend.Backend, snapshot []models.Student) (json.RawMessage, error) {
	if s.state != Active {
		return nil, ErrNotActive
	}
	if snapshot == nil {
		snapshot = []models.Student{}
	}

	raw, err := b.PerformAction(ctx, models.EndpointSaveRoll, models.SaveRollRequest{Students: &snapshot})
	if err != nil {
		return nil, &SaveError{Err: err}
	}

	s.saved++
	return raw, nil
}
