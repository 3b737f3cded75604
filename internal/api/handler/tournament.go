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

// TournamentHandler handles tournament endpoints
type TournamentHandler struct {
	schedule *schedule.Controller
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(scheduleController *schedule.Controller) *TournamentHandler {
	return &TournamentHandler{
		schedule: scheduleController,
	}
}

// List handles GET /api/v1/tournaments, scoped to the caller's identity
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	tournaments, err := h.schedule.ListTournaments(r.Context(), identity)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TournamentsFromModel(tournaments))
}

// Create handles POST /api/v1/tournaments
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}

	tournament, err := h.schedule.CreateTournament(r.Context(), schedule.NewTournament{
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Description: req.Description,
		Status:      req.Status,
		PlayerIDs:   request.PlayerIDs(req.PlayerIDs),
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]response.Tournament{"tournament": response.TournamentFromModel(tournament)})
}

// Update handles PUT /api/v1/tournaments/{id}
func (h *TournamentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	var req request.UpdateTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	update := schedule.TournamentUpdate{
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Description: req.Description,
		Status:      req.Status,
	}
	if req.PlayerIDs != nil {
		ids := request.PlayerIDs(*req.PlayerIDs)
		update.PlayerIDs = &ids
	}

	tournament, err := h.schedule.UpdateTournament(r.Context(), id, update)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]response.Tournament{"tournament": response.TournamentFromModel(tournament)})
}

// Delete handles DELETE /api/v1/tournaments/{id}; absent ids are a silent no-op
func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	if err := h.schedule.DeleteTournament(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Tournament deleted successfully"})
}
