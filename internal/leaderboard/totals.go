package leaderboard

import (
	"github.com/dynastyhq/gridiron/internal/reconcile"
	"github.com/dynastyhq/gridiron/internal/stats"
)

// Totals is the raw-number view the derived metric formulas read from. It
// abstracts over season and career aggregates so every formula works in
// both display modes.
type Totals struct {
	Categories  map[stats.Category]map[string]float64
	GamesPlayed float64
}

// Get reads one canonical field, treating anything missing as 0
func (t Totals) Get(cat stats.Category, field string) float64 {
	return t.Categories[cat][field]
}

// TotalsFromSeason wraps one season aggregate
func TotalsFromSeason(agg *stats.SeasonAggregate) Totals {
	return Totals{
		Categories:  agg.Categories,
		GamesPlayed: float64(agg.GamesPlayed),
	}
}

// TotalsFromCareer wraps one career aggregate
func TotalsFromCareer(agg *reconcile.CareerAggregate) Totals {
	return Totals{
		Categories:  agg.Categories,
		GamesPlayed: float64(agg.GamesPlayed),
	}
}
