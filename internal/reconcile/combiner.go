package reconcile

import (
	"sort"

	"github.com/dynastyhq/gridiron/internal/stats"
)

// Mode selects between per-season and whole-career display
type Mode string

const (
	ModeSeason Mode = "season"
	ModeCareer Mode = "career"
)

// ParseMode maps a query value onto a mode, defaulting to career
func ParseMode(s string) Mode {
	if s == string(ModeSeason) {
		return ModeSeason
	}
	return ModeCareer
}

// CareerAggregate is one player's totals across every season on record
type CareerAggregate struct {
	PlayerID    string                                `json:"pid"`
	Years       []int                                 `json:"years"`
	Categories  map[stats.Category]map[string]float64 `json:"categories"`
	GamesPlayed int                                   `json:"gamesPlayed"`
}

// CombineCareer rolls a player's season aggregates into one career total.
// Counting fields sum across seasons. Long fields also sum by default,
// matching the recorded behavior of the save files this replaces; setting
// remaxLongs re-applies the max rule across seasons instead, which yields a
// true career-longest value.
func CombineCareer(seasons []*stats.SeasonAggregate, remaxLongs bool) *CareerAggregate {
	if len(seasons) == 0 {
		return nil
	}

	career := &CareerAggregate{
		PlayerID:   seasons[0].PlayerID,
		Categories: make(map[stats.Category]map[string]float64),
	}

	for _, season := range seasons {
		if season == nil {
			continue
		}
		career.Years = append(career.Years, season.Year)
		career.GamesPlayed += season.GamesPlayed

		for cat, fields := range season.Categories {
			schema := stats.FieldsFor(cat)
			totals := career.Categories[cat]
			if totals == nil {
				totals = make(map[string]float64)
				career.Categories[cat] = totals
			}
			for field, value := range fields {
				if remaxLongs && schema.IsMax(field) {
					if value > totals[field] {
						totals[field] = value
					}
					continue
				}
				totals[field] += value
			}
		}
	}

	sort.Ints(career.Years)
	return career
}
