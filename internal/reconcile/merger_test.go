package reconcile

import (
	"testing"

	"github.com/dynastyhq/gridiron/internal/stats"
)

func boxSeason(pid string, year, games int, cats map[stats.Category]map[string]float64) *stats.SeasonAggregate {
	agg := stats.NewSeasonAggregate(pid, year)
	agg.GamesPlayed = games
	for cat, fields := range cats {
		agg.Categories[cat] = fields
	}
	return agg
}

func TestMergeSeason_BoxWinsWholeCategory(t *testing.T) {
	box := boxSeason("p1", 2027, 11, map[stats.Category]map[string]float64{
		stats.CategoryRushing: {"car": 180, "yds": 950, "td": 9, "lng": 64},
	})
	manual := &ManualSheet{Categories: map[stats.Category]map[string]float64{
		stats.CategoryRushing: {"car": 200, "yds": 1100, "td": 14, "lng": 70},
	}}

	merged := NewMerger().MergeSeason("p1", 2027, box, manual)

	rush := merged.Categories[stats.CategoryRushing]
	if rush["yds"] != 950 || rush["td"] != 9 {
		t.Errorf("rushing = %v, want box-score values exactly, no blend", rush)
	}
	if rush["car"] != 180 {
		t.Errorf("car = %v, want box-score 180", rush["car"])
	}
}

func TestMergeSeason_ManualFillsMissingCategory(t *testing.T) {
	box := boxSeason("p1", 2027, 11, map[stats.Category]map[string]float64{
		stats.CategoryRushing: {"car": 180, "yds": 950},
	})
	manual := &ManualSheet{Categories: map[stats.Category]map[string]float64{
		stats.CategoryReceiving: {"rec": 22, "yds": 240, "td": 2},
	}}

	merged := NewMerger().MergeSeason("p1", 2027, box, manual)

	if merged.Categories[stats.CategoryRushing]["yds"] != 950 {
		t.Error("box rushing lost in merge")
	}
	if merged.Categories[stats.CategoryReceiving]["rec"] != 22 {
		t.Error("manual receiving should fill the category the box never touched")
	}
	if merged.GamesPlayed != 11 {
		t.Errorf("GamesPlayed = %d, want box-score 11", merged.GamesPlayed)
	}
}

func TestMergeSeason_PriorityIsPerCategoryNotPerField(t *testing.T) {
	// Box has attempts but no yards field recorded; the manual sheet's yards
	// must NOT fill the hole — one source wins the whole category.
	box := boxSeason("p1", 2027, 8, map[stats.Category]map[string]float64{
		stats.CategoryPassing: {"cmp": 100, "att": 160},
	})
	manual := &ManualSheet{Categories: map[stats.Category]map[string]float64{
		stats.CategoryPassing: {"cmp": 110, "att": 170, "yds": 2100},
	}}

	merged := NewMerger().MergeSeason("p1", 2027, box, manual)

	pass := merged.Categories[stats.CategoryPassing]
	if pass["yds"] != 0 {
		t.Errorf("yds = %v, want 0: manual fields must not blend into a box-won category", pass["yds"])
	}
	if pass["att"] != 160 {
		t.Errorf("att = %v, want box 160", pass["att"])
	}
}

func TestMergeSeason_ManualOnly(t *testing.T) {
	manual := &ManualSheet{
		GamesPlayed: 12,
		Categories: map[stats.Category]map[string]float64{
			stats.CategoryKicking: {"fgm": 18, "fga": 22},
		},
	}

	merged := NewMerger().MergeSeason("p9", 2025, nil, manual)

	if merged == nil {
		t.Fatal("manual-only season must still produce an aggregate")
	}
	if merged.PlayerID != "p9" || merged.Year != 2025 {
		t.Errorf("identity = %s/%d, want p9/2025", merged.PlayerID, merged.Year)
	}
	if merged.Categories[stats.CategoryKicking]["fgm"] != 18 {
		t.Error("manual kicking lost")
	}
	if merged.GamesPlayed != 12 {
		t.Errorf("GamesPlayed = %d, want sheet's 12", merged.GamesPlayed)
	}
}

func TestMergeSeason_BothNil(t *testing.T) {
	if got := NewMerger().MergeSeason("p1", 2027, nil, nil); got != nil {
		t.Errorf("MergeSeason(nil, nil) = %v, want nil", got)
	}
}

func TestMergeSeason_Metrics(t *testing.T) {
	m := NewMerger()
	box := boxSeason("p1", 2027, 1, map[stats.Category]map[string]float64{
		stats.CategoryRushing: {"yds": 10},
	})
	manual := &ManualSheet{Categories: map[stats.Category]map[string]float64{
		stats.CategoryReceiving: {"yds": 20},
	}}

	m.MergeSeason("p1", 2027, box, manual)

	metrics := m.GetMetrics()
	if metrics.TotalMerges != 1 {
		t.Errorf("TotalMerges = %d, want 1", metrics.TotalMerges)
	}
	if metrics.BoxPreferred != 1 || metrics.ManualPreferred != 1 {
		t.Errorf("BoxPreferred/ManualPreferred = %d/%d, want 1/1",
			metrics.BoxPreferred, metrics.ManualPreferred)
	}
}
