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

// MatchHandler handles match endpoints
type MatchHandler struct {
	schedule *schedule.Controller
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(scheduleController *schedule.Controller) *MatchHandler {
	return &MatchHandler{
		schedule: scheduleController,
	}
}

// List handles GET /api/v1/matches, scoped to the caller's identity
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	matches, err := h.schedule.ListMatches(r.Context(), identity)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchesFromModel(matches))
}

// Create handles POST /api/v1/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Title == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("title is required"))
		return
	}

	match, err := h.schedule.CreateMatch(r.Context(), schedule.NewMatch{
		Title:     req.Title,
		Opponent:  req.Opponent,
		Date:      req.Date,
		Time:      req.Time,
		Location:  req.Location,
		Result:    req.Result,
		Score:     req.Score,
		PlayerIDs: request.PlayerIDs(req.PlayerIDs),
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]response.Match{"match": response.MatchFromModel(match)})
}

// Update handles PUT /api/v1/matches/{id}
func (h *MatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	var req request.UpdateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	update := schedule.MatchUpdate{
		Title:    req.Title,
		Opponent: req.Opponent,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		Result:   req.Result,
		Score:    req.Score,
	}
	if req.PlayerIDs != nil {
		ids := request.PlayerIDs(*req.PlayerIDs)
		update.PlayerIDs = &ids
	}

	match, err := h.schedule.UpdateMatch(r.Context(), id, update)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]response.Match{"match": response.MatchFromModel(match)})
}

// Delete handles DELETE /api/v1/matches/{id}; absent ids are a silent no-op
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	if err := h.schedule.DeleteMatch(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Match deleted successfully"})
}
