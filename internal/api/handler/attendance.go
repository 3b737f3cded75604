package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rosterhub/rosterhub/internal/api/apierr"
	"github.com/rosterhub/rosterhub/internal/api/middleware"
	"github.com/rosterhub/rosterhub/internal/api/request"
	"github.com/rosterhub/rosterhub/internal/api/response"
	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/services/attendance"
)

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	attendance *attendance.Controller
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceController *attendance.Controller) *AttendanceHandler {
	return &AttendanceHandler{
		attendance: attendanceController,
	}
}

// List handles GET /api/v1/attendance, scoped to the caller's identity
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	records, err := h.attendance.List(r.Context(), identity)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.AttendanceListFromModel(records))
}

// Create handles POST /api/v1/attendance
func (h *AttendanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("playerId is required"))
		return
	}
	status, err := parseAttendanceStatus(req.Status)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	record, err := h.attendance.Create(r.Context(), attendance.NewRecord{
		PlayerID: model.PlayerID(req.PlayerID),
		Date:     req.Date,
		Status:   status,
		Notes:    req.Notes,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]response.Attendance{"attendance": response.AttendanceFromModel(record)})
}

// Update handles PUT /api/v1/attendance/{id}
func (h *AttendanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.AttendanceID(mux.Vars(r)["id"])

	var req request.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	update := attendance.RecordUpdate{
		Date:  req.Date,
		Notes: req.Notes,
	}
	if req.Status != nil {
		status, err := parseAttendanceStatus(*req.Status)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		update.Status = &status
	}

	record, err := h.attendance.Update(r.Context(), id, update)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]response.Attendance{"attendance": response.AttendanceFromModel(record)})
}

// Delete handles DELETE /api/v1/attendance/{id}; absent ids are a silent no-op
func (h *AttendanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.AttendanceID(mux.Vars(r)["id"])

	if err := h.attendance.Delete(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Attendance record deleted successfully"})
}

func parseAttendanceStatus(raw string) (model.AttendanceStatus, error) {
	switch status := model.AttendanceStatus(raw); status {
	case model.AttendancePresent, model.AttendanceAbsent, model.AttendanceLate:
		return status, nil
	default:
		return "", apierr.NewInvalidRequestError("status must be one of present, absent, late")
	}
}
