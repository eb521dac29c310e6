package models

import (
	"time"

	"github.com/danielhkuo/homeboard/attendance"
)

// Backend endpoints
const (
	EndpointGetStudents   = "get-homeboard-students"
	EndpointSaveRoll      = "save-roll"
	EndpointGetActivities = "get-activities"
)

// Activity types
const (
	ActivityRoll = "roll"
)

// Domain types

type Student struct {
	ID         string           `json:"id"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Attendance attendance.State `json:"attendance"`
}

type StudentRollState struct {
	StudentID string           `json:"student_id"`
	RollState attendance.State `json:"roll_state"`
}

type Roll struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	CompletedAt       time.Time          `json:"completed_at"`
	StudentRollStates []StudentRollState `json:"student_roll_states"`
}

type Activity struct {
	Type   string    `json:"type"`
	Date   time.Time `json:"date"`
	Entity Roll      `json:"entity"`
}

// Request types

type CreateStudentRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Students is a pointer so a missing list can be told apart from an empty one
type SaveRollRequest struct {
	Students *[]Student `json:"students"`
}

// Response types

type StudentList struct {
	Students []Student `json:"students"`
}

// A nil Result marks a malformed response
type GetStudentsResponse struct {
	Success bool         `json:"success"`
	Result  *StudentList `json:"result"`
}

type SaveRollResult struct {
	RollID      string                   `json:"roll_id"`
	CompletedAt time.Time                `json:"completed_at"`
	Counts      map[attendance.State]int `json:"counts"`
}

type SaveRollResponse struct {
	Success bool           `json:"success"`
	Result  SaveRollResult `json:"result"`
}

type ActivityList struct {
	Activity []Activity `json:"activity"`
}

type GetActivitiesResponse struct {
	Success bool         `json:"success"`
	Result  ActivityList `json:"result"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type CreateStudentResponse struct {
	Success bool    `json:"success"`
	Result  Student `json:"result"`
}
