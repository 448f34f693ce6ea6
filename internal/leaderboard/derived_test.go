package leaderboard

import (
	"math"
	"testing"

	"github.com/dynastyhq/gridiron/internal/stats"
)

func totals(cats map[stats.Category]map[string]float64, games float64) Totals {
	return Totals{Categories: cats, GamesPlayed: games}
}

func TestPasserRating_WorkedExample(t *testing.T) {
	// 20/30, 300 yards, 3 TD, 1 INT:
	// a clamps at 2.375, b = 1.75, c = 2.0, d = 1.5417 → ≈127.78
	tot := totals(map[stats.Category]map[string]float64{
		stats.CategoryPassing: {"cmp": 20, "att": 30, "yds": 300, "td": 3, "int": 1},
	}, 1)

	got := PasserRating(tot)
	if math.Abs(got-127.78) > 0.01 {
		t.Errorf("PasserRating = %.4f, want ≈127.78", got)
	}
}

func TestPasserRating_ZeroAttempts(t *testing.T) {
	tot := totals(map[stats.Category]map[string]float64{
		stats.CategoryPassing: {"cmp": 0, "att": 0},
	}, 1)

	got := PasserRating(tot)
	if got != 0 || math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("PasserRating with 0 attempts = %v, want exactly 0", got)
	}
}

func TestCompletionPct(t *testing.T) {
	tot := totals(map[stats.Category]map[string]float64{
		stats.CategoryPassing: {"cmp": 20, "att": 30},
	}, 1)

	got := CompletionPct(tot)
	if math.Abs(got-66.6667) > 0.001 {
		t.Errorf("CompletionPct = %v, want 66.667", got)
	}
}

func TestAdjustedYardsPerAttempt(t *testing.T) {
	tot := totals(map[stats.Category]map[string]float64{
		stats.CategoryPassing: {"att": 30, "yds": 300, "td": 3, "int": 1},
	}, 1)

	// (300 + 60 - 45) / 30 = 10.5
	if got := AdjustedYardsPerAttempt(tot); math.Abs(got-10.5) > 1e-9 {
		t.Errorf("AY/A = %v, want 10.5", got)
	}
}

func TestScrimmage_WorkedExample(t *testing.T) {
	tot := totals(map[stats.Category]map[string]float64{
		stats.CategoryRushing:   {"car": 160, "yds": 800, "td": 8},
		stats.CategoryReceiving: {"rec": 15, "yds": 150, "td": 2},
	}, 1)

	if got := ScrimmageYards(tot); got != 950 {
		t.Errorf("ScrimmageYards = %v, want 950", got)
	}
	if got := ScrimmagePlays(tot); got != 175 {
		t.Errorf("ScrimmagePlays = %v, want carries+receptions = 175", got)
	}
	if got := ScrimmageTouchdowns(tot); got != 10 {
		t.Errorf("ScrimmageTouchdowns = %v, want 10", got)
	}
}

func TestAllPurpose(t *testing.T) {
	tot := totals(map[stats.Category]map[string]float64{
		stats.CategoryRushing:    {"car": 100, "yds": 500, "td": 4},
		stats.CategoryReceiving:  {"rec": 20, "yds": 200, "td": 1},
		stats.CategoryKickReturn: {"ret": 10, "yds": 250, "td": 1},
		stats.CategoryPuntReturn: {"ret": 5, "yds": 50, "td": 0},
	}, 1)

	if got := AllPurposeYards(tot); got != 1000 {
		t.Errorf("AllPurposeYards = %v, want 1000", got)
	}
	if got := AllPurposePlays(tot); got != 135 {
		t.Errorf("AllPurposePlays = %v, want 135", got)
	}
	if got := AllPurposeTouchdowns(tot); got != 6 {
		t.Errorf("AllPurposeTouchdowns = %v, want 6", got)
	}
	if got := AllPurposeYardsPerPlay(tot); math.Abs(got-1000.0/135) > 1e-9 {
		t.Errorf("AllPurposeYardsPerPlay = %v, want %v", got, 1000.0/135)
	}
}

func TestTotalTackles(t *testing.T) {
	tot := totals(map[stats.Category]map[string]float64{
		stats.CategoryDefense: {"solo": 60, "asst": 25},
	}, 1)

	if got := TotalTackles(tot); got != 85 {
		t.Errorf("TotalTackles = %v, want 85", got)
	}
}

func TestFieldGoalPct(t *testing.T) {
	tot := totals(map[stats.Category]map[string]float64{
		stats.CategoryKicking: {"fgm": 18, "fga": 22},
	}, 1)

	if got := FieldGoalPct(tot); math.Abs(got-81.818) > 0.001 {
		t.Errorf("FieldGoalPct = %v, want 81.818", got)
	}
}

func TestSafeDivZeroDenominators(t *testing.T) {
	empty := totals(map[stats.Category]map[string]float64{}, 0)

	checks := map[string]float64{
		"CompletionPct":     CompletionPct(empty),
		"YardsPerAttempt":   YardsPerAttempt(empty),
		"YardsPerCarry":     YardsPerCarry(empty),
		"YardsPerReception": YardsPerReception(empty),
		"FieldGoalPct":      FieldGoalPct(empty),
		"YardsPerPunt":      YardsPerPunt(empty),
		"KickReturnAverage": KickReturnAverage(empty),
		"PuntReturnAverage": PuntReturnAverage(empty),
		"PassYardsPerGame":  PassYardsPerGame(empty),
	}
	for name, got := range checks {
		if got != 0 || math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("%s on empty totals = %v, want 0", name, got)
		}
	}
}
