package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rosterhub/rosterhub/internal/api/handler"
	apimiddleware "github.com/rosterhub/rosterhub/internal/api/middleware"
	"github.com/rosterhub/rosterhub/internal/middleware"
	"github.com/rosterhub/rosterhub/internal/services/attendance"
	"github.com/rosterhub/rosterhub/internal/services/auth"
	"github.com/rosterhub/rosterhub/internal/services/roster"
	"github.com/rosterhub/rosterhub/internal/services/schedule"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger               *slog.Logger
	AuthService          *auth.Service
	RosterController     *roster.Controller
	ScheduleController   *schedule.Controller
	AttendanceController *attendance.Controller
	TokenTTL             time.Duration
}

// NewRouter creates a new API router with all routes configured.
// Collection reads require authentication; writes additionally require
// the admin role.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.TokenTTL)
	playerHandler := handler.NewPlayerHandler(cfg.RosterController)
	matchHandler := handler.NewMatchHandler(cfg.ScheduleController)
	tournamentHandler := handler.NewTournamentHandler(cfg.ScheduleController)
	eventHandler := handler.NewEventHandler(cfg.ScheduleController)
	attendanceHandler := handler.NewAttendanceHandler(cfg.AttendanceController)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (login/logout need no session)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	// Reads are scoped per identity inside the controllers; writes are
	// restricted to admins at the routing layer
	reads := api.NewRoute().Subrouter()
	reads.Use(authMiddleware)

	writes := api.NewRoute().Subrouter()
	writes.Use(authMiddleware)
	writes.Use(apimiddleware.RequireAdmin)

	// The roster itself is admin-only in full, reads included
	registerCollection(writes, writes, "/players",
		playerHandler.List, playerHandler.Create, playerHandler.Update, playerHandler.Delete)
	registerCollection(reads, writes, "/matches",
		matchHandler.List, matchHandler.Create, matchHandler.Update, matchHandler.Delete)
	registerCollection(reads, writes, "/tournaments",
		tournamentHandler.List, tournamentHandler.Create, tournamentHandler.Update, tournamentHandler.Delete)
	registerCollection(reads, writes, "/events",
		eventHandler.List, eventHandler.Create, eventHandler.Update, eventHandler.Delete)
	registerCollection(reads, writes, "/attendance",
		attendanceHandler.List, attendanceHandler.Create, attendanceHandler.Update, attendanceHandler.Delete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

// registerCollection wires the uniform list/create/update/delete shape
// shared by every collection
func registerCollection(reads, writes *mux.Router, path string, list, create, update, del http.HandlerFunc) {
	reads.HandleFunc(path, list).Methods(http.MethodGet)
	writes.HandleFunc(path, create).Methods(http.MethodPost)
	writes.HandleFunc(path+"/{id}", update).Methods(http.MethodPut)
	writes.HandleFunc(path+"/{id}", del).Methods(http.MethodDelete)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
