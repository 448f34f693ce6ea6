package service

import (
	"context"
	"fmt"

	"github.com/dynastyhq/gridiron/internal/reconcile"
	"github.com/dynastyhq/gridiron/internal/stats"
	"github.com/dynastyhq/gridiron/internal/store"
	"github.com/dynastyhq/gridiron/internal/store/repository"
)

// PlayerStatsService assembles single-player stat pages
type PlayerStatsService struct {
	playerRepo *repository.PlayerRepository
	gameRepo   *repository.GameRepository
	manualRepo *repository.ManualStatsRepository
	merger     *reconcile.Merger
	remaxLongs bool
}

// NewPlayerStatsService creates a new player stats service
func NewPlayerStatsService(db *store.Database, remaxLongs bool) *PlayerStatsService {
	return &PlayerStatsService{
		playerRepo: repository.NewPlayerRepository(db),
		gameRepo:   repository.NewGameRepository(db),
		manualRepo: repository.NewManualStatsRepository(db),
		merger:     reconcile.NewMerger(),
		remaxLongs: remaxLongs,
	}
}

// PlayerStats is a full single-player view: every resolved season plus the
// career combination
type PlayerStats struct {
	Player  *store.Player              `json:"player"`
	Seasons []*stats.SeasonAggregate   `json:"seasons"`
	Career  *reconcile.CareerAggregate `json:"career,omitempty"`
}

// GetPlayerStats resolves all of a player's seasons and their career totals
func (s *PlayerStatsService) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	games, err := s.gameRepo.GetByDynasty(ctx, player.DynastyID)
	if err != nil {
		return nil, fmt.Errorf("loading games: %w", err)
	}

	allSheets, err := s.manualRepo.GetByDynasty(ctx, player.DynastyID)
	if err != nil {
		return nil, fmt.Errorf("loading manual stats: %w", err)
	}

	manual := groupManualSheets([]*store.Player{player}, allSheets)

	var seasons []*stats.SeasonAggregate
	for _, year := range collectYears(games, allSheets) {
		box := stats.ExtractSeason(player, year, games)
		if box.GamesPlayed == 0 && len(box.Categories) == 0 {
			box = nil
		}

		merged := s.merger.MergeSeason(playerID, year, box, manual[seasonKey{playerID, year}])
		if merged == nil {
			continue
		}
		seasons = append(seasons, merged)
	}

	return &PlayerStats{
		Player:  player,
		Seasons: seasons,
		Career:  reconcile.CombineCareer(seasons, s.remaxLongs),
	}, nil
}
