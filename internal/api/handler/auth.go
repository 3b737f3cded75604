package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rosterhub/rosterhub/internal/api/apierr"
	"github.com/rosterhub/rosterhub/internal/api/middleware"
	"github.com/rosterhub/rosterhub/internal/api/request"
	"github.com/rosterhub/rosterhub/internal/api/response"
	"github.com/rosterhub/rosterhub/internal/services/auth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *auth.Service
	cookieTTL   time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieTTL:   cookieTTL,
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
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

	token, user, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.setTokenCookie(w, token, int(h.cookieTTL.Seconds()))
	response.JSON(w, http.StatusOK, response.LoginResponse{
		Token: token,
		User:  response.UserSummaryFromModel(user),
	})
}

// Logout handles POST /api/v1/auth/logout. Tokens are stateless, so this
// only clears the browser cookie; the token itself stays valid until expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.setTokenCookie(w, "", -1)
	response.NoContent(w)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	user, err := h.authService.Me(r.Context(), identity)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MeResponseFromModel(user))
}

func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
