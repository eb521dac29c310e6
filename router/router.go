// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/homeboard/cliparse"
	"github.com/danielhkuo/homeboard/handlers"
	"github.com/danielhkuo/homeboard/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	studentHandler := handlers.NewStudentHandler(db, cfg)
	rollHandler := handlers.NewRollHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Roster
	mux.HandleFunc("GET /get-homeboard-students", middleware.WithLogging(studentHandler.GetHomeboardStudents))
	mux.HandleFunc("POST /students", middleware.WithLogging(studentHandler.CreateStudent))

	// Rolls
	mux.HandleFunc("POST /save-roll", middleware.WithLogging(rollHandler.SaveRoll))
	mux.HandleFunc("GET /get-activities", middleware.WithLogging(rollHandler.GetActivities))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("homeboard API v1"))
	})

	return mux
}
