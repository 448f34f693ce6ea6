package rest

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dynastyhq/gridiron/internal/cache"
	"github.com/dynastyhq/gridiron/internal/config"
	"github.com/dynastyhq/gridiron/internal/importer"
	"github.com/dynastyhq/gridiron/internal/leaderboard"
	"github.com/dynastyhq/gridiron/internal/publisher"
	"github.com/dynastyhq/gridiron/internal/reconcile"
	"github.com/dynastyhq/gridiron/internal/service"
	"github.com/dynastyhq/gridiron/internal/store"
	"github.com/dynastyhq/gridiron/internal/store/repository"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db           *store.Database
	cache        *cache.RedisCache
	dynastyRepo  *repository.DynastyRepository
	playerRepo   *repository.PlayerRepository
	gameRepo     *repository.GameRepository
	manualRepo   *repository.ManualStatsRepository
	leaderboards *service.LeaderboardService
	playerStats  *service.PlayerStatsService
	importer     *importer.Importer
}

// NewHandler creates a new handler
func NewHandler(db *store.Database, rc *cache.RedisCache, pub *publisher.RedisStreamPublisher, cfg config.LeaderboardConfig) *Handler {
	return &Handler{
		db:           db,
		cache:        rc,
		dynastyRepo:  repository.NewDynastyRepository(db),
		playerRepo:   repository.NewPlayerRepository(db),
		gameRepo:     repository.NewGameRepository(db),
		manualRepo:   repository.NewManualStatsRepository(db),
		leaderboards: service.NewLeaderboardService(db, rc, pub, cfg),
		playerStats:  service.NewPlayerStatsService(db, cfg.RemaxCareerLongs),
		importer:     importer.NewImporter(db),
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "healthy",
		"service": "gridiron",
	}

	if err := h.db.HealthCheck(); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
	}
	if h.cache != nil {
		if err := h.cache.HealthCheck(r.Context()); err != nil {
			status["status"] = "degraded"
			status["redis"] = err.Error()
		}
	}

	code := http.StatusOK
	if status["status"] != "healthy" {
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, status)
}

// ListDynasties returns all dynasties
func (h *Handler) ListDynasties(w http.ResponseWriter, r *http.Request) {
	dynasties, err := h.dynastyRepo.GetAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch dynasties", err)
		return
	}
	respondJSON(w, http.StatusOK, dynasties)
}

// GetDynasty returns one dynasty
func (h *Handler) GetDynasty(w http.ResponseWriter, r *http.Request) {
	dynastyID := mux.Vars(r)["dynastyID"]

	dynasty, err := h.dynastyRepo.GetByID(r.Context(), dynastyID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Dynasty not found", err)
		return
	}
	respondJSON(w, http.StatusOK, dynasty)
}

// UpsertDynasty creates or updates a dynasty
func (h *Handler) UpsertDynasty(w http.ResponseWriter, r *http.Request) {
	var dynasty store.Dynasty
	if err := json.NewDecoder(r.Body).Decode(&dynasty); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid dynasty payload", err)
		return
	}
	if dynasty.Name == "" || dynasty.UserTeam == "" {
		respondError(w, http.StatusBadRequest, "Dynasty name and user team are required", nil)
		return
	}
	if dynasty.DynastyID == "" {
		dynasty.DynastyID = uuid.NewString()
	}

	if err := h.dynastyRepo.Upsert(r.Context(), &dynasty); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save dynasty", err)
		return
	}
	respondJSON(w, http.StatusOK, dynasty)
}

// DeleteDynasty removes a dynasty and everything under it
func (h *Handler) DeleteDynasty(w http.ResponseWriter, r *http.Request) {
	dynastyID := mux.Vars(r)["dynastyID"]

	if err := h.dynastyRepo.Delete(r.Context(), dynastyID); err != nil {
		respondError(w, http.StatusNotFound, "Dynasty not found", err)
		return
	}

	h.invalidate(r, dynastyID)
	respondJSON(w, http.StatusOK, map[string]string{"deleted": dynastyID})
}

// ImportDynasty bulk-imports a full dynasty document and recomputes its
// leaderboards
func (h *Handler) ImportDynasty(w http.ResponseWriter, r *http.Request) {
	dynastyID := mux.Vars(r)["dynastyID"]

	var doc importer.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid dynasty document", err)
		return
	}
	doc.Dynasty.DynastyID = dynastyID

	summary, err := h.importer.Import(r.Context(), &doc)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Import failed", err)
		return
	}

	if err := h.leaderboards.Recompute(r.Context(), dynastyID); err != nil {
		log.Printf("post-import recompute failed: %v", err)
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetRoster returns a dynasty's players, optionally filtered by ?q= name
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	dynastyID := mux.Vars(r)["dynastyID"]

	var players []*store.Player
	var err error
	if q := r.URL.Query().Get("q"); q != "" {
		players, err = h.playerRepo.SearchByName(r.Context(), dynastyID, q)
	} else {
		players, err = h.playerRepo.GetByDynasty(r.Context(), dynastyID)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch roster", err)
		return
	}
	respondJSON(w, http.StatusOK, players)
}

// UpsertPlayer creates or updates a roster entry
func (h *Handler) UpsertPlayer(w http.ResponseWriter, r *http.Request) {
	dynastyID := mux.Vars(r)["dynastyID"]

	var player store.Player
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player payload", err)
		return
	}
	if player.Name == "" {
		respondError(w, http.StatusBadRequest, "Player name is required", nil)
		return
	}
	player.DynastyID = dynastyID
	if player.PlayerID == "" {
		player.PlayerID = uuid.NewString()
	}

	if err := h.playerRepo.Upsert(r.Context(), &player); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save player", err)
		return
	}

	h.invalidate(r, dynastyID)
	respondJSON(w, http.StatusOK, player)
}

// GetPlayer returns one roster entry
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]

	player, err := h.playerRepo.GetByID(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}
	respondJSON(w, http.StatusOK, player)
}

// DeletePlayer removes a roster entry
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]

	player, err := h.playerRepo.GetByID(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}

	if err := h.playerRepo.Delete(r.Context(), playerID); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete player", err)
		return
	}

	h.invalidate(r, player.DynastyID)
	respondJSON(w, http.StatusOK, map[string]string{"deleted": playerID})
}

// GetPlayerStats returns a player's resolved seasons and career totals
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]

	stats, err := h.playerStats.GetPlayerStats(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player stats not found", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// GetGames returns a dynasty's games, optionally filtered by ?year=
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	dynastyID := mux.Vars(r)["dynastyID"]

	var games []*store.GameRecord
	var err error
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, convErr := strconv.Atoi(yearStr)
		if convErr != nil {
			respondError(w, http.StatusBadRequest, "Invalid year", convErr)
			return
		}
		games, err = h.gameRepo.GetByDynastyYear(r.Context(), dynastyID, year)
	} else {
		games, err = h.gameRepo.GetByDynasty(r.Context(), dynastyID)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch games", err)
		return
	}
	respondJSON(w, http.StatusOK, games)
}

// UpsertGame creates or updates a game and its box score
func (h *Handler) UpsertGame(w http.ResponseWriter, r *http.Request) {
	dynastyID := mux.Vars(r)["dynastyID"]

	var game store.GameRecord
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game payload", err)
		return
	}
	if game.Year == 0 {
		respondError(w, http.StatusBadRequest, "Game year is required", nil)
		return
	}
	game.DynastyID = dynastyID
	if game.GameID == "" {
		game.GameID = uuid.NewString()
	}

	if err := h.gameRepo.Upsert(r.Context(), &game); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save game", err)
		return
	}

	h.invalidate(r, dynastyID)
	respondJSON(w, http.StatusOK, game)
}

// GetGame returns one game with its box score
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameID"]

	game, err := h.gameRepo.GetByID(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}
	respondJSON(w, http.StatusOK, game)
}

// DeleteGame removes a game
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameID"]

	game, err := h.gameRepo.GetByID(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}

	if err := h.gameRepo.Delete(r.Context(), gameID); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete game", err)
		return
	}

	h.invalidate(r, game.DynastyID)
	respondJSON(w, http.StatusOK, map[string]string{"deleted": gameID})
}

// GetManualStats returns a dynasty's manual sheets, optionally filtered by ?year=
func (h *Handler) GetManualStats(w http.ResponseWriter, r *http.Request) {
	dynastyID := mux.Vars(r)["dynastyID"]

	var sheets []*store.ManualSeasonStats
	var err error
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, convErr := strconv.Atoi(yearStr)
		if convErr != nil {
			respondError(w, http.StatusBadRequest, "Invalid year", convErr)
			return
		}
		sheets, err = h.manualRepo.GetByDynastyYear(r.Context(), dynastyID, year)
	} else {
		sheets, err = h.manualRepo.GetByDynasty(r.Context(), dynastyID)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch manual stats", err)
		return
	}
	respondJSON(w, http.StatusOK, sheets)
}

// UpsertManualStats creates or replaces one dynasty/year/category sheet
func (h *Handler) UpsertManualStats(w http.ResponseWriter, r *http.Request) {
	dynastyID := mux.Vars(r)["dynastyID"]

	var sheet store.ManualSeasonStats
	if err := json.NewDecoder(r.Body).Decode(&sheet); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid manual stats payload", err)
		return
	}
	if sheet.Year == 0 || sheet.Category == "" {
		respondError(w, http.StatusBadRequest, "Year and category are required", nil)
		return
	}
	sheet.DynastyID = dynastyID
	if sheet.ID == "" {
		sheet.ID = uuid.NewString()
	}

	if err := h.manualRepo.Upsert(r.Context(), &sheet); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save manual stats", err)
		return
	}

	h.invalidate(r, dynastyID)
	respondJSON(w, http.StatusOK, sheet)
}

// DeleteManualStats removes one dynasty/year/category sheet
func (h *Handler) DeleteManualStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dynastyID := vars["dynastyID"]
	category := vars["category"]

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	if err := h.manualRepo.Delete(r.Context(), dynastyID, year, category); err != nil {
		respondError(w, http.StatusNotFound, "Manual stats not found", err)
		return
	}

	h.invalidate(r, dynastyID)
	respondJSON(w, http.StatusOK, map[string]string{
		"deleted": fmt.Sprintf("%s/%d/%s", dynastyID, year, category),
	})
}

// Board is one leaderboard in an API response: the stat's display metadata
// plus its ranked entries with formatted values
type Board struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	Abbr    string        `json:"abbr"`
	Entries []RankedEntry `json:"entries"`
}

// RankedEntry is a leaderboard entry with its rank and display string
type RankedEntry struct {
	Rank int `json:"rank"`
	leaderboard.Entry
	Display string `json:"display"`
}

// GetLeaderboards returns every leaderboard for a dynasty. ?mode=season|career
// selects the aggregation mode; anything else means career.
func (h *Handler) GetLeaderboards(w http.ResponseWriter, r *http.Request) {
	dynastyID := mux.Vars(r)["dynastyID"]
	mode := reconcile.ParseMode(r.URL.Query().Get("mode"))

	boards, err := h.leaderboards.Compute(r.Context(), dynastyID, mode)
	if err != nil {
		respondError(w, http.StatusNotFound, "Failed to compute leaderboards", err)
		return
	}

	out := make([]Board, 0, len(boards))
	for _, def := range leaderboard.Definitions() {
		entries := boards[def.Key]
		board := Board{
			Key:     def.Key,
			Label:   def.Label,
			Abbr:    def.Abbr,
			Entries: make([]RankedEntry, 0, len(entries)),
		}
		for i, entry := range entries {
			board.Entries = append(board.Entries, RankedEntry{
				Rank:    i + 1,
				Entry:   entry,
				Display: leaderboard.FormatValue(entry.Value, def.Format),
			})
		}
		out = append(out, board)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"dynasty_id": dynastyID,
		"mode":       string(mode),
		"boards":     out,
	})
}

// RecomputeLeaderboards forces a cache rebuild for a dynasty
func (h *Handler) RecomputeLeaderboards(w http.ResponseWriter, r *http.Request) {
	dynastyID := mux.Vars(r)["dynastyID"]

	if err := h.leaderboards.Recompute(r.Context(), dynastyID); err != nil {
		respondError(w, http.StatusInternalServerError, "Recompute failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"recomputed": dynastyID})
}

// invalidate drops a dynasty's cached leaderboards after a data change; the
// next read recomputes them
func (h *Handler) invalidate(r *http.Request, dynastyID string) {
	if h.cache == nil {
		return
	}
	if err := h.cache.InvalidateDynasty(r.Context(), dynastyID); err != nil {
		log.Printf("cache invalidation for %s failed: %v", dynastyID, err)
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
