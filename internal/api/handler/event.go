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
	"github.com/rosterhub/rosterhub/internal/services/schedule"
)

// EventHandler handles event endpoints
type EventHandler struct {
	schedule *schedule.Controller
}

// NewEventHandler creates a new event handler
func NewEventHandler(scheduleController *schedule.Controller) *EventHandler {
	return &EventHandler{
		schedule: scheduleController,
	}
}

// List handles GET /api/v1/events, scoped to the caller's identity
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	events, err := h.schedule.ListEvents(r.Context(), identity)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.EventsFromModel(events))
}

// Create handles POST /api/v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Title == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("title is required"))
		return
	}

	event, err := h.schedule.CreateEvent(r.Context(), schedule.NewEvent{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Type:        req.Type,
		PlayerIDs:   request.PlayerIDs(req.PlayerIDs),
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]response.Event{"event": response.EventFromModel(event)})
}

// Update handles PUT /api/v1/events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])

	var req request.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	update := schedule.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Type:        req.Type,
	}
	if req.PlayerIDs != nil {
		ids := request.PlayerIDs(*req.PlayerIDs)
		update.PlayerIDs = &ids
	}

	event, err := h.schedule.UpdateEvent(r.Context(), id, update)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]response.Event{"event": response.EventFromModel(event)})
}

// Delete handles DELETE /api/v1/events/{id}; absent ids are a silent no-op
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])

	if err := h.schedule.DeleteEvent(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Event deleted successfully"})
}
