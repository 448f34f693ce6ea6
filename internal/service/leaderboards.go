package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/dynastyhq/gridiron/internal/cache"
	"github.com/dynastyhq/gridiron/internal/config"
	"github.com/dynastyhq/gridiron/internal/leaderboard"
	"github.com/dynastyhq/gridiron/internal/publisher"
	"github.com/dynastyhq/gridiron/internal/reconcile"
	"github.com/dynastyhq/gridiron/internal/stats"
	"github.com/dynastyhq/gridiron/internal/store"
	"github.com/dynastyhq/gridiron/internal/store/repository"
)

// LeaderboardService computes and caches dynasty leaderboards
type LeaderboardService struct {
	dynastyRepo *repository.DynastyRepository
	playerRepo  *repository.PlayerRepository
	gameRepo    *repository.GameRepository
	manualRepo  *repository.ManualStatsRepository
	merger      *reconcile.Merger
	cache       *cache.RedisCache
	publisher   *publisher.RedisStreamPublisher
	cfg         config.LeaderboardConfig
}

// NewLeaderboardService creates a new leaderboard service. Cache and
// publisher are optional; computation works without them.
func NewLeaderboardService(db *store.Database, rc *cache.RedisCache, pub *publisher.RedisStreamPublisher, cfg config.LeaderboardConfig) *LeaderboardService {
	return &LeaderboardService{
		dynastyRepo: repository.NewDynastyRepository(db),
		playerRepo:  repository.NewPlayerRepository(db),
		gameRepo:    repository.NewGameRepository(db),
		manualRepo:  repository.NewManualStatsRepository(db),
		merger:      reconcile.NewMerger(),
		cache:       rc,
		publisher:   pub,
		cfg:         cfg,
	}
}

// Compute returns the full leaderboard set for a dynasty in the given mode,
// serving from cache when possible
func (s *LeaderboardService) Compute(ctx context.Context, dynastyID string, mode reconcile.Mode) (map[string][]leaderboard.Entry, error) {
	key := cache.LeaderboardKey(dynastyID, string(mode))

	if s.cache != nil {
		var cached map[string][]leaderboard.Entry
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			log.Printf("leaderboard cache read failed: %v", err)
		}
		if hit {
			return cached, nil
		}
	}

	boards, err := s.compute(ctx, dynastyID, mode)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, boards, s.cfg.CacheTTL); err != nil {
			log.Printf("leaderboard cache write failed: %v", err)
		}
	}

	return boards, nil
}

// Recompute drops the cached boards for a dynasty, rebuilds both modes, and
// publishes an update event per mode
func (s *LeaderboardService) Recompute(ctx context.Context, dynastyID string) error {
	if s.cache != nil {
		if err := s.cache.InvalidateDynasty(ctx, dynastyID); err != nil {
			log.Printf("leaderboard cache invalidation failed: %v", err)
		}
	}

	for _, mode := range []reconcile.Mode{reconcile.ModeSeason, reconcile.ModeCareer} {
		boards, err := s.Compute(ctx, dynastyID, mode)
		if err != nil {
			return fmt.Errorf("recomputing %s leaderboards: %w", mode, err)
		}

		if s.publisher != nil {
			update := publisher.LeaderboardUpdate{
				DynastyID: dynastyID,
				Mode:      string(mode),
				Boards:    len(boards),
			}
			if err := s.publisher.PublishLeaderboardUpdate(ctx, update); err != nil {
				log.Printf("leaderboard update publish failed: %v", err)
			}
		}
	}

	return nil
}

func (s *LeaderboardService) compute(ctx context.Context, dynastyID string, mode reconcile.Mode) (map[string][]leaderboard.Entry, error) {
	if _, err := s.dynastyRepo.GetByID(ctx, dynastyID); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.GetByDynasty(ctx, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}

	games, err := s.gameRepo.GetByDynasty(ctx, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("loading games: %w", err)
	}

	sheets, err := s.manualRepo.GetByDynasty(ctx, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("loading manual stats: %w", err)
	}

	seasonsByPlayer := s.resolveSeasons(players, games, sheets)

	rows := buildRows(players, seasonsByPlayer, mode, s.cfg.RemaxCareerLongs)

	return leaderboard.BuildAll(mode, rows, s.cfg.EngineConfig()), nil
}

// resolveSeasons runs the full per-player pipeline: box-score extraction per
// season, then the merge against any manual sheets for the same year
func (s *LeaderboardService) resolveSeasons(players []*store.Player, games []*store.GameRecord, sheets []*store.ManualSeasonStats) map[string][]*stats.SeasonAggregate {
	years := collectYears(games, sheets)
	manual := groupManualSheets(players, sheets)

	out := make(map[string][]*stats.SeasonAggregate, len(players))
	for _, p := range players {
		for _, year := range years {
			box := stats.ExtractSeason(p, year, games)
			if box != nil && box.GamesPlayed == 0 && len(box.Categories) == 0 {
				box = nil
			}

			merged := s.merger.MergeSeason(p.PlayerID, year, box, manual[seasonKey{p.PlayerID, year}])
			if merged == nil {
				continue
			}
			out[p.PlayerID] = append(out[p.PlayerID], merged)
		}
	}

	return out
}

// buildRows shapes the resolved seasons into ranking candidates: one row per
// player in career mode, one row per player-season in season mode. Rows are
// name-sorted (then by year) so leaderboard ties break alphabetically.
func buildRows(players []*store.Player, seasons map[string][]*stats.SeasonAggregate, mode reconcile.Mode, remaxLongs bool) []leaderboard.Row {
	byID := make(map[string]*store.Player, len(players))
	for _, p := range players {
		byID[p.PlayerID] = p
	}

	var rows []leaderboard.Row
	for playerID, playerSeasons := range seasons {
		p := byID[playerID]
		if p == nil {
			continue
		}

		if mode == reconcile.ModeCareer {
			career := reconcile.CombineCareer(playerSeasons, remaxLongs)
			if career == nil {
				continue
			}
			rows = append(rows, leaderboard.Row{
				PlayerID: playerID,
				Name:     p.Name,
				Team:     p.Team,
				Years:    career.Years,
				Totals:   leaderboard.TotalsFromCareer(career),
			})
			continue
		}

		for _, season := range playerSeasons {
			rows = append(rows, leaderboard.Row{
				PlayerID: playerID,
				Name:     p.Name,
				Team:     p.TeamForYear(season.Year),
				Year:     season.Year,
				Totals:   leaderboard.TotalsFromSeason(season),
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].Year < rows[j].Year
	})

	return rows
}

type seasonKey struct {
	playerID string
	year     int
}

// groupManualSheets pivots the stored per-category sheets into one
// per-player-per-year ManualSheet with canonical field names. Lines missing a
// player ID are matched against the roster by normalized name; lines naming
// nobody on the roster are skipped.
func groupManualSheets(players []*store.Player, sheets []*store.ManualSeasonStats) map[seasonKey]*reconcile.ManualSheet {
	byName := make(map[string]string, len(players))
	for _, p := range players {
		byName[stats.NormalizeName(p.Name)] = p.PlayerID
	}

	out := make(map[seasonKey]*reconcile.ManualSheet)
	for _, sheet := range sheets {
		cat := stats.Category(sheet.Category)
		for _, line := range sheet.Entries {
			playerID := line.PlayerID
			if playerID == "" {
				playerID = byName[stats.NormalizeName(line.PlayerName)]
			}
			if playerID == "" {
				continue
			}

			key := seasonKey{playerID, sheet.Year}
			ms := out[key]
			if ms == nil {
				ms = &reconcile.ManualSheet{Categories: make(map[stats.Category]map[string]float64)}
				out[key] = ms
			}

			fields := stats.TranslateManual(cat, line.Fields)
			if len(fields) > 0 {
				ms.Categories[cat] = fields
			}

			// "gp" rides on each line but is not a category stat; keep the
			// largest count seen across the player's sheets for the year.
			if gp, ok := line.Fields["gp"]; ok {
				if n := int(stats.CoerceFloat(gp)); n > ms.GamesPlayed {
					ms.GamesPlayed = n
				}
			}
		}
	}

	return out
}

// collectYears gathers every season any data exists for, sorted ascending
func collectYears(games []*store.GameRecord, sheets []*store.ManualSeasonStats) []int {
	seen := make(map[int]bool)
	for _, g := range games {
		seen[g.Year] = true
	}
	for _, s := range sheets {
		seen[s.Year] = true
	}

	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
