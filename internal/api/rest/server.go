package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dynastyhq/gridiron/internal/cache"
	"github.com/dynastyhq/gridiron/internal/config"
	"github.com/dynastyhq/gridiron/internal/publisher"
	"github.com/dynastyhq/gridiron/internal/store"
)

// Server represents the REST API server
type Server struct {
	port    int
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port int, db *store.Database, rc *cache.RedisCache, pub *publisher.RedisStreamPublisher, cfg config.LeaderboardConfig) *Server {
	handler := NewHandler(db, rc, pub, cfg)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Dynasties
	api.HandleFunc("/dynasties", handler.ListDynasties).Methods("GET")
	api.HandleFunc("/dynasties", handler.UpsertDynasty).Methods("POST")
	api.HandleFunc("/dynasties/{dynastyID}", handler.GetDynasty).Methods("GET")
	api.HandleFunc("/dynasties/{dynastyID}", handler.DeleteDynasty).Methods("DELETE")
	api.HandleFunc("/dynasties/{dynastyID}/import", handler.ImportDynasty).Methods("POST")

	// Roster
	api.HandleFunc("/dynasties/{dynastyID}/players", handler.GetRoster).Methods("GET")
	api.HandleFunc("/dynasties/{dynastyID}/players", handler.UpsertPlayer).Methods("POST")
	api.HandleFunc("/players/{playerID}", handler.GetPlayer).Methods("GET")
	api.HandleFunc("/players/{playerID}", handler.DeletePlayer).Methods("DELETE")
	api.HandleFunc("/players/{playerID}/stats", handler.GetPlayerStats).Methods("GET")

	// Games
	api.HandleFunc("/dynasties/{dynastyID}/games", handler.GetGames).Methods("GET")
	api.HandleFunc("/dynasties/{dynastyID}/games", handler.UpsertGame).Methods("POST")
	api.HandleFunc("/games/{gameID}", handler.GetGame).Methods("GET")
	api.HandleFunc("/games/{gameID}", handler.DeleteGame).Methods("DELETE")

	// Manual stat sheets
	api.HandleFunc("/dynasties/{dynastyID}/manual-stats", handler.GetManualStats).Methods("GET")
	api.HandleFunc("/dynasties/{dynastyID}/manual-stats", handler.UpsertManualStats).Methods("POST")
	api.HandleFunc("/dynasties/{dynastyID}/manual-stats/{year}/{category}", handler.DeleteManualStats).Methods("DELETE")

	// Leaderboards
	api.HandleFunc("/dynasties/{dynastyID}/leaderboards", handler.GetLeaderboards).Methods("GET")
	api.HandleFunc("/dynasties/{dynastyID}/leaderboards/recompute", handler.RecomputeLeaderboards).Methods("POST")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
