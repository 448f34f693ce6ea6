package reconcile

import (
	"time"

	"github.com/dynastyhq/gridiron/internal/stats"
)

// Merger combines box-score-derived season totals with manually entered
// end-of-season stat sheets. Priority is per category, never per field: one
// source wins the whole category, so a season can never mix box-score yards
// with manual attempts and break rate-stat math.
type Merger struct {
	metrics *Metrics
}

// Metrics tracks merge statistics
type Metrics struct {
	TotalMerges     int
	BoxPreferred    int
	ManualPreferred int
	LastMerge       time.Time
}

// NewMerger creates a merger
func NewMerger() *Merger {
	return &Merger{metrics: &Metrics{LastMerge: time.Now()}}
}

// ManualSheet holds one player's manual lines for a single year, already
// translated to canonical field names, keyed by category. GamesPlayed comes
// from the sheet's "gp" column when present.
type ManualSheet struct {
	Categories  map[stats.Category]map[string]float64
	GamesPlayed int
}

// MergeSeason resolves one player/year. Box-score data wins any category it
// has data for; the manual sheet fills only categories the box scores never
// touched. The result replaces, never blends.
func (m *Merger) MergeSeason(playerID string, year int, box *stats.SeasonAggregate, manual *ManualSheet) *stats.SeasonAggregate {
	m.metrics.TotalMerges++
	m.metrics.LastMerge = time.Now()

	if box == nil && manual == nil {
		return nil
	}

	merged := stats.NewSeasonAggregate(playerID, year)
	if box != nil {
		merged.GamesPlayed = box.GamesPlayed
	}

	for _, cat := range stats.Categories() {
		if box != nil && box.HasCategory(cat) {
			merged.Categories[cat] = copyFields(box.Categories[cat])
			m.metrics.BoxPreferred++
			continue
		}
		if manual != nil {
			if fields, ok := manual.Categories[cat]; ok && len(fields) > 0 {
				merged.Categories[cat] = copyFields(fields)
				m.metrics.ManualPreferred++
			}
		}
	}

	// A season recorded only on paper still needs a game count for per-game
	// rates; the sheet's own count is the only source then.
	if merged.GamesPlayed == 0 && manual != nil {
		merged.GamesPlayed = manual.GamesPlayed
	}

	if len(merged.Categories) == 0 && merged.GamesPlayed == 0 {
		return nil
	}

	return merged
}

// GetMetrics returns current merge metrics
func (m *Merger) GetMetrics() *Metrics {
	return m.metrics
}

func copyFields(src map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
