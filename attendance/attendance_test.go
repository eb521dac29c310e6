// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package attendance

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		from State
		want State
	}{
		{Unmarked, Present},
		{Present, Late},
		{Late, Absent},
		{Absent, Present},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			if got := Next(tt.from); got != tt.want {
				t.Errorf("Next(%s) = %s, want %s", tt.from, got, tt.want)
			}
		})
	}
}

func TestNextCycle(t *testing.T) {
	s := Unmarked
	for i := 0; i < 4; i++ {
		s = Next(s)
	}
	if s != Present {
		t.Errorf("Expected four clicks from unmark to land on present, got %s", s)
	}

	// After the first reset the cycle length is 3
	start := Next(Unmarked)
	s = start
	for i := 0; i < 3; i++ {
		s = Next(s)
	}
	if s != start {
		t.Errorf("Expected cycle of length 3, got %s after three steps from %s", s, start)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    State
		wantErr bool
	}{
		{"", Unmarked, false},
		{"unmark", Unmarked, false},
		{"present", Present, false},
		{"late", Late, false},
		{"absent", Absent, false},
		{"excused", "", true},
		{"PRESENT", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidState) {
					t.Errorf("Expected ErrInvalidState, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestStateJSON(t *testing.T) {
	var payload struct {
		Attendance State `json:"attendance"`
	}

	if err := json.Unmarshal([]byte(`{"attendance":"late"}`), &payload); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if payload.Attendance != Late {
		t.Errorf("Expected late, got %s", payload.Attendance)
	}

	if err := json.Unmarshal([]byte(`{"attendance":"sick"}`), &payload); err == nil {
		t.Error("Expected error decoding unknown state")
	}

	payload.Attendance = ""
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	if string(b) != `{"attendance":"unmark"}` {
		t.Errorf("Expected zero state to encode as unmark, got %s", b)
	}
}

func TestCategory(t *testing.T) {
	if _, err := ParseCategory("all"); err != nil {
		t.Errorf("Expected all to parse: %v", err)
	}
	if _, err := ParseCategory("nobody"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Expected ErrInvalidCategory, got %v", err)
	}

	if !All.Matches(Late) {
		t.Error("All should match every state")
	}
	if !CategoryOf(Unmarked).Matches("") {
		t.Error("Unmarked category should match the zero state")
	}
	if CategoryOf(Absent).Matches(Present) {
		t.Error("Absent category should not match present")
	}

	if _, ok := All.State(); ok {
		t.Error("All should not map to a state")
	}
	if s, ok := CategoryOf(Late).State(); !ok || s != Late {
		t.Errorf("Expected late, got %s (%v)", s, ok)
	}

	cats := Categories()
	if len(cats) != 5 || cats[0] != All {
		t.Errorf("Expected All followed by four states, got %v", cats)
	}
}
