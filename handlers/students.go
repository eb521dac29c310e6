// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/homeboard/attendance"
	"github.com/danielhkuo/homeboard/cliparse"
	"github.com/danielhkuo/homeboard/db"
	"github.com/danielhkuo/homeboard/middleware"
	"github.com/danielhkuo/homeboard/models"
)

type StudentHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewStudentHandler(conn *sql.DB, cfg cliparse.Config) *StudentHandler {
	return &StudentHandler{db: conn, cfg: cfg}
}

func (h *StudentHandler) q(query string) string {
	return db.Rebind(h.cfg.DatabaseType, query)
}

// GetHomeboardStudents handles GET /get-homeboard-students
// Returns the roster in insertion order with each student's last recorded attendance
func (h *StudentHandler) GetHomeboardStudents(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT id, first_name, last_name, attendance
		FROM student
		ORDER BY position, id
	`)
	if err != nil {
		slog.Error("failed to query students", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var st models.Student
		var state string
		if err := rows.Scan(&st.ID, &st.FirstName, &st.LastName, &state); err != nil {
			slog.Error("failed to scan student", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		st.Attendance, err = attendance.Parse(state)
		if err != nil {
			slog.Error("stored attendance is invalid", "student_id", st.ID, "error", err)
			st.Attendance = attendance.Unmarked
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate students", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GetStudentsResponse{
		Success: true,
		Result:  &models.StudentList{Students: students},
	})
}

// CreateStudent handles POST /students
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "first_name is required")
		return
	}
	if req.LastName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "last_name is required")
		return
	}

	student := models.Student{
		ID:         uuid.NewString(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Attendance: attendance.Unmarked,
	}

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRow("SELECT COALESCE(MAX(position), 0) + 1 FROM student").Scan(&position)
	if err != nil {
		slog.Error("failed to read roster position", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	_, err = tx.Exec(h.q(`
		INSERT INTO student (id, position, first_name, last_name, attendance, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), student.ID, position, student.FirstName, student.LastName, string(student.Attendance), time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert student", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create student")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create student")
		return
	}

	slog.Info("student created", "student_id", student.ID, "position", position)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateStudentResponse{
		Success: true,
		Result:  student,
	})
}
