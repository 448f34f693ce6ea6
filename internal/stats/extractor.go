package stats

import "github.com/dynastyhq/gridiron/internal/store"

// SeasonAggregate is one player's raw totals for a single season, one
// canonical field map per category
type SeasonAggregate struct {
	PlayerID    string                          `json:"pid"`
	Year        int                             `json:"year"`
	Categories  map[Category]map[string]float64 `json:"categories"`
	GamesPlayed int                             `json:"gamesPlayed"`
}

// NewSeasonAggregate creates an empty aggregate for a player/year
func NewSeasonAggregate(playerID string, year int) *SeasonAggregate {
	return &SeasonAggregate{
		PlayerID:   playerID,
		Year:       year,
		Categories: make(map[Category]map[string]float64),
	}
}

// HasCategory reports whether any data was folded in for the category
func (a *SeasonAggregate) HasCategory(cat Category) bool {
	return len(a.Categories[cat]) > 0
}

// ExtractSeason folds all qualifying per-game stats for a player/year into
// one raw aggregate. Attribution is applied per game, the locator per
// contributing game, and the schema registry's merge rule per field. Fold
// order does not affect the result: sums and maxes are both
// order-independent.
func ExtractSeason(p *store.Player, year int, games []*store.GameRecord) *SeasonAggregate {
	agg := NewSeasonAggregate(p.PlayerID, year)

	for _, game := range games {
		if !GameCountsForPlayer(p, year, game) {
			continue
		}

		found, ok := FindPlayerInGame(p.Name, game, SideUnknown)
		if !ok {
			continue
		}

		agg.GamesPlayed++
		for cat, fields := range found.Categories {
			foldCategory(agg, cat, fields)
		}
	}

	return agg
}

// foldCategory merges one game's canonical category fields into the running
// totals using the declared rule per field. Fields outside the schema are
// dropped.
func foldCategory(agg *SeasonAggregate, cat Category, fields map[string]float64) {
	schema := FieldsFor(cat)
	totals := agg.Categories[cat]
	if totals == nil {
		totals = make(map[string]float64)
		agg.Categories[cat] = totals
	}

	for field, value := range fields {
		switch {
		case schema.IsSum(field):
			totals[field] += value
		case schema.IsMax(field):
			if value > totals[field] {
				totals[field] = value
			}
		}
	}
}
