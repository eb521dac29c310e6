// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/homeboard/attendance"
	"github.com/danielhkuo/homeboard/cliparse"
	"github.com/danielhkuo/homeboard/db"
	"github.com/danielhkuo/homeboard/middleware"
	"github.com/danielhkuo/homeboard/models"
)

type RollHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRollHandler(conn *sql.DB, cfg cliparse.Config) *RollHandler {
	return &RollHandler{db: conn, cfg: cfg}
}

func (h *RollHandler) q(query string) string {
	return db.Rebind(h.cfg.DatabaseType, query)
}

// SaveRoll handles POST /save-roll
func (h *RollHandler) SaveRoll(w http.ResponseWriter, r *http.Request) {
	var req models.SaveRollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Students == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "students is required")
		return
	}
	students := *req.Students

	seen := make(map[string]bool, len(students))
	for _, st := range students {
		if st.ID == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "student id is required")
			return
		}
		if seen[st.ID] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "duplicate student id "+st.ID)
			return
		}
		seen[st.ID] = true
	}

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Every submitted student must be on the roster
	known, err := rosterIDs(tx)
	if err != nil {
		slog.Error("failed to query roster", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	for _, st := range students {
		if !known[st.ID] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown student id "+st.ID)
			return
		}
	}

	var rollCount int
	if err := tx.QueryRow("SELECT COUNT(*) FROM roll").Scan(&rollCount); err != nil {
		slog.Error("failed to count rolls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rollID := uuid.NewString()
	completedAt := time.Now().UTC()
	name := fmt.Sprintf("Roll %d", rollCount+1)

	_, err = tx.Exec(h.q(`
		INSERT INTO roll (id, name, completed_at)
		VALUES (?, ?, ?)
	`), rollID, name, completedAt)
	if err != nil {
		slog.Error("failed to insert roll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save roll")
		return
	}

	insertEntry := h.q(`
		INSERT INTO roll_entry (roll_id, student_id, position, state)
		VALUES (?, ?, ?, ?)
	`)
	updateStudent := h.q(`UPDATE student SET attendance = ? WHERE id = ?`)

	counts := make(map[attendance.State]int, len(attendance.States()))
	for _, s := range attendance.States() {
		counts[s] = 0
	}

	for i, st := range students {
		state := st.Attendance
		if state == "" {
			state = attendance.Unmarked
		}
		counts[state]++

		if _, err := tx.Exec(insertEntry, rollID, st.ID, i, string(state)); err != nil {
			slog.Error("failed to insert roll entry", "roll_id", rollID, "student_id", st.ID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save roll")
			return
		}
		if _, err := tx.Exec(updateStudent, string(state), st.ID); err != nil {
			slog.Error("failed to update student attendance", "student_id", st.ID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save roll")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save roll")
		return
	}

	slog.Info("roll saved", "roll_id", rollID, "students", len(students))

	middleware.JSONResponse(w, http.StatusCreated, models.SaveRollResponse{
		Success: true,
		Result: models.SaveRollResult{
			RollID:      rollID,
			CompletedAt: completedAt,
			Counts:      counts,
		},
	})
}

// GetActivities handles GET /get-activities
// Lists saved rolls, newest first
func (h *RollHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT id, name, completed_at
		FROM roll
		ORDER BY completed_at DESC, id
	`)
	if err != nil {
		slog.Error("failed to query rolls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rolls := []models.Roll{}
	index := map[string]int{}
	for rows.Next() {
		var roll models.Roll
		if err := rows.Scan(&roll.ID, &roll.Name, &roll.CompletedAt); err != nil {
			rows.Close()
			slog.Error("failed to scan roll", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		roll.StudentRollStates = []models.StudentRollState{}
		index[roll.ID] = len(rolls)
		rolls = append(rolls, roll)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate rolls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	entries, err := h.db.QueryContext(r.Context(), `
		SELECT roll_id, student_id, state
		FROM roll_entry
		ORDER BY roll_id, position
	`)
	if err != nil {
		slog.Error("failed to query roll entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer entries.Close()

	for entries.Next() {
		var rollID, state string
		var entry models.StudentRollState
		if err := entries.Scan(&rollID, &entry.StudentID, &state); err != nil {
			slog.Error("failed to scan roll entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		entry.RollState, _ = attendance.Parse(state)

		i, ok := index[rollID]
		if !ok {
			continue
		}
		rolls[i].StudentRollStates = append(rolls[i].StudentRollStates, entry)
	}
	if err := entries.Err(); err != nil {
		slog.Error("failed to iterate roll entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	activity := make([]models.Activity, len(rolls))
	for i, roll := range rolls {
		activity[i] = models.Activity{
			Type:   models.ActivityRoll,
			Date:   roll.CompletedAt,
			Entity: roll,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.GetActivitiesResponse{
		Success: true,
		Result:  models.ActivityList{Activity: activity},
	})
}

func rosterIDs(tx *sql.Tx) (map[string]bool, error) {
	rows, err := tx.Query("SELECT id FROM student")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}
