package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/services/auth"
)

// ErrorResponse is the wire shape of every error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// httpError combines an HTTP status code with a user-facing message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Errors constructed at the boundary carry their own status
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Auth errors. Login failures stay deliberately vague; token failures
	// mean a credential was presented but rejected.
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, "Invalid username or password"}
	case errors.Is(err, auth.ErrTokenMalformed), errors.Is(err, auth.ErrTokenExpired):
		return &httpError{http.StatusForbidden, "Forbidden"}

	// Store errors
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, "Player not found"}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, "User not found"}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, "Match not found"}
	case errors.Is(err, model.ErrTournamentNotFound):
		return &httpError{http.StatusNotFound, "Tournament not found"}
	case errors.Is(err, model.ErrEventNotFound):
		return &httpError{http.StatusNotFound, "Event not found"}
	case errors.Is(err, model.ErrAttendanceNotFound):
		return &httpError{http.StatusNotFound, "Attendance record not found"}
	case errors.Is(err, model.ErrUsernameTaken):
		return &httpError{http.StatusConflict, "Username already exists"}
	case errors.Is(err, model.ErrInvalidRole):
		return &httpError{http.StatusBadRequest, "Invalid role"}

	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewInvalidRequestError creates a 400 validation error with a specific message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewUnauthorizedError creates the 401 returned when no credential is presented
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, "Unauthorized"}
}

// NewForbiddenError creates the 403 returned when a credential is presented
// but insufficient
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, "Forbidden"}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
