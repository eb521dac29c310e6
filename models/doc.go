// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire and domain types shared by the board engine
and the backend API.

# Domain Types

  - Student: id, first_name, last_name, attendance
  - StudentRollState: one student's recorded state inside a saved roll
  - Roll: a saved roll with its per-student states
  - Activity: a roll as listed by the activity feed

# Request Types

  - CreateStudentRequest: first_name, last_name
  - SaveRollRequest: students

# Response Types

  - GetStudentsResponse: {success, result: {students}}
  - SaveRollResponse: {success, result: {roll_id, completed_at, counts}}
  - GetActivitiesResponse: {success, result: {activity}}
  - ErrorResponse: error, message

# Endpoints

The backend collaborator is addressed by endpoint name:

	EndpointGetStudents   = "get-homeboard-students"
	EndpointSaveRoll      = "save-roll"
	EndpointGetActivities = "get-activities"
*/
package models
