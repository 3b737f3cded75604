package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rosterhub/rosterhub/internal/api/apierr"
	"github.com/rosterhub/rosterhub/internal/api/request"
	"github.com/rosterhub/rosterhub/internal/api/response"
	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/services/roster"
)

// PlayerHandler handles roster endpoints (admin only; enforced in routing)
type PlayerHandler struct {
	roster *roster.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterController *roster.Controller) *PlayerHandler {
	return &PlayerHandler{
		roster: rosterController,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.roster.ListPlayers(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}
	if req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password is required"))
		return
	}

	player, user, err := h.roster.CreatePlayer(r.Context(), roster.NewPlayer{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		DateOfBirth:  req.DateOfBirth,
		Username:     req.Username,
		Password:     req.Password,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.CreatedPlayerResponse{Player: response.PlayerFromModel(player)}
	resp.User.UserID = string(user.ID)
	resp.User.Username = user.Username
	response.JSON(w, http.StatusCreated, resp)
}

// Update handles PUT /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	update := roster.PlayerUpdate{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		DateOfBirth:  req.DateOfBirth,
	}
	if req.Status != nil {
		status := model.PlayerStatus(*req.Status)
		if status != model.PlayerActive && status != model.PlayerInactive {
			apierr.WriteError(w, apierr.NewInvalidRequestError("status must be active or inactive"))
			return
		}
		update.Status = &status
	}

	player, err := h.roster.UpdatePlayer(r.Context(), id, update)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]response.Player{"player": response.PlayerFromModel(player)})
}

// Delete handles DELETE /api/v1/players/{id}. Deletion cascades to the
// player's login account.
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.roster.DeletePlayer(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Player deleted successfully"})
}
