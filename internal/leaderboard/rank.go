package leaderboard

import (
	"sort"

	"github.com/dynastyhq/gridiron/internal/reconcile"
)

// DefaultTopN is the leaderboard size when configuration supplies none
const DefaultTopN = 10

// Config carries the knobs of the qualification and ranking step. Thresholds
// override the per-stat defaults by key.
type Config struct {
	TopN       int                  `mapstructure:"top_n"`
	Thresholds map[string]Threshold `mapstructure:"thresholds"`
}

// Row is one candidate: a player identity plus the raw totals the stat
// definitions read from. Year is set in season mode, Years in career mode.
type Row struct {
	PlayerID string
	Name     string
	Team     string
	Year     int
	Years    []int
	Totals   Totals
}

// Entry is one ranked leaderboard line handed to the UI
type Entry struct {
	PlayerID string  `json:"pid"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Value    float64 `json:"value"`
	Year     int     `json:"year,omitempty"`
	Years    []int   `json:"years,omitempty"`
}

// Build qualifies, ranks, and truncates one leaderboard. Sub-threshold rows
// are excluded entirely, never shown as zero. Sorting is descending by value
// (ascending for lowerIsBetter stats) and stable, so ties keep the caller's
// row order; truncation to top-N happens last.
func Build(def StatDefinition, mode reconcile.Mode, rows []Row, cfg Config) []Entry {
	career := mode == reconcile.ModeCareer

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		if !qualifies(def, career, row.Totals, cfg) {
			continue
		}
		entry := Entry{
			PlayerID: row.PlayerID,
			Name:     row.Name,
			Team:     row.Team,
			Value:    def.Value(row.Totals),
		}
		if career {
			entry.Years = row.Years
		} else {
			entry.Year = row.Year
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if def.LowerIsBetter {
			return entries[i].Value < entries[j].Value
		}
		return entries[i].Value > entries[j].Value
	})

	topN := cfg.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(entries) > topN {
		entries = entries[:topN]
	}

	return entries
}

// BuildAll runs every stat definition over the same rows
func BuildAll(mode reconcile.Mode, rows []Row, cfg Config) map[string][]Entry {
	boards := make(map[string][]Entry)
	for _, def := range Definitions() {
		boards[def.Key] = Build(def, mode, rows, cfg)
	}
	return boards
}

// qualifies applies the minimum-volume gates. Raw counting boards always
// qualify; calculated stats with no gate qualify too (the formula's own
// zero-denominator branch already yields 0 for them).
func qualifies(def StatDefinition, career bool, t Totals, cfg Config) bool {
	if !def.Calculated {
		return true
	}

	if def.MinAtt != nil && def.Volume != nil {
		min := pickThreshold(def.Key, *def.MinAtt, cfg).For(career)
		if def.Volume(t) < min {
			return false
		}
	}
	if def.MinYds != nil && def.YardsVolume != nil {
		min := pickThreshold(def.Key, *def.MinYds, cfg).For(career)
		if def.YardsVolume(t) < min {
			return false
		}
	}

	return true
}

// pickThreshold prefers a configured override for the stat key
func pickThreshold(key string, fallback Threshold, cfg Config) Threshold {
	if override, ok := cfg.Thresholds[key]; ok {
		return override
	}
	return fallback
}
