package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Schedule errors
	ErrMatchNotFound      = errors.New("match not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrEventNotFound      = errors.New("event not found")

	// Attendance errors
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// Role errors
	ErrInvalidRole = errors.New("invalid role")
)
