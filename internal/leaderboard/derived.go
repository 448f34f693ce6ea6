package leaderboard

import "github.com/dynastyhq/gridiron/internal/stats"

// Derived metric formulas. Every division branches on the denominator and
// yields 0 for the empty case; the qualification gate decides whether a 0 is
// actually displayed.

// safeDiv performs division with zero check
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// CompletionPct = completions / attempts * 100
func CompletionPct(t Totals) float64 {
	return safeDiv(t.Get(stats.CategoryPassing, "cmp"), t.Get(stats.CategoryPassing, "att")) * 100
}

// YardsPerAttempt = passing yards / attempts
func YardsPerAttempt(t Totals) float64 {
	return safeDiv(t.Get(stats.CategoryPassing, "yds"), t.Get(stats.CategoryPassing, "att"))
}

// AdjustedYardsPerAttempt = (yards + 20*TD - 45*INT) / attempts
func AdjustedYardsPerAttempt(t Totals) float64 {
	yds := t.Get(stats.CategoryPassing, "yds")
	td := t.Get(stats.CategoryPassing, "td")
	ints := t.Get(stats.CategoryPassing, "int")
	return safeDiv(yds+20*td-45*ints, t.Get(stats.CategoryPassing, "att"))
}

// PasserRating computes the NCAA-style four-component rating. Each
// component clamps to [0, 2.375]; the sum is divided by 6 and scaled by 100.
func PasserRating(t Totals) float64 {
	att := t.Get(stats.CategoryPassing, "att")
	if att == 0 {
		return 0
	}
	cmp := t.Get(stats.CategoryPassing, "cmp")
	yds := t.Get(stats.CategoryPassing, "yds")
	td := t.Get(stats.CategoryPassing, "td")
	ints := t.Get(stats.CategoryPassing, "int")

	a := clampComponent((cmp/att - 0.3) * 20)
	b := clampComponent((yds/att - 3) * 0.25)
	c := clampComponent(td / att * 20)
	d := clampComponent(2.375 - ints/att*25)

	return (a + b + c + d) / 6 * 100
}

func clampComponent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 2.375 {
		return 2.375
	}
	return v
}

// PassYardsPerGame = passing yards / games played
func PassYardsPerGame(t Totals) float64 {
	return safeDiv(t.Get(stats.CategoryPassing, "yds"), t.GamesPlayed)
}

// TouchdownPct = passing TDs / attempts * 100
func TouchdownPct(t Totals) float64 {
	return safeDiv(t.Get(stats.CategoryPassing, "td"), t.Get(stats.CategoryPassing, "att")) * 100
}

// InterceptionPct = interceptions thrown / attempts * 100
func InterceptionPct(t Totals) float64 {
	return safeDiv(t.Get(stats.CategoryPassing, "int"), t.Get(stats.CategoryPassing, "att")) * 100
}

// YardsPerCarry = rushing yards / carries
func YardsPerCarry(t Totals) float64 {
	return safeDiv(t.Get(stats.CategoryRushing, "yds"), t.Get(stats.CategoryRushing, "car"))
}

// YardsPerReception = receiving yards / receptions
func YardsPerReception(t Totals) float64 {
	return safeDiv(t.Get(stats.CategoryReceiving, "yds"), t.Get(stats.CategoryReceiving, "rec"))
}

// Scrimmage is a derived category, never separately sourced: rushing plus
// receiving.

// ScrimmagePlays = carries + receptions
func ScrimmagePlays(t Totals) float64 {
	return t.Get(stats.CategoryRushing, "car") + t.Get(stats.CategoryReceiving, "rec")
}

// ScrimmageYards = rushing yards + receiving yards
func ScrimmageYards(t Totals) float64 {
	return t.Get(stats.CategoryRushing, "yds") + t.Get(stats.CategoryReceiving, "yds")
}

// ScrimmageTouchdowns = rushing TDs + receiving TDs
func ScrimmageTouchdowns(t Totals) float64 {
	return t.Get(stats.CategoryRushing, "td") + t.Get(stats.CategoryReceiving, "td")
}

// All-purpose sums scrimmage with both return games.

// AllPurposePlays = carries + receptions + kick returns + punt returns
func AllPurposePlays(t Totals) float64 {
	return ScrimmagePlays(t) +
		t.Get(stats.CategoryKickReturn, "ret") +
		t.Get(stats.CategoryPuntReturn, "ret")
}

// AllPurposeYards = scrimmage yards + kick return yards + punt return yards
func AllPurposeYards(t Totals) float64 {
	return ScrimmageYards(t) +
		t.Get(stats.CategoryKickReturn, "yds") +
		t.Get(stats.CategoryPuntReturn, "yds")
}

// AllPurposeTouchdowns = scrimmage TDs + return TDs
func AllPurposeTouchdowns(t Totals) float64 {
	return ScrimmageTouchdowns(t) +
		t.Get(stats.CategoryKickReturn, "td") +
		t.Get(stats.CategoryPuntReturn, "td")
}

// AllPurposeYardsPerPlay = all-purpose yards / all-purpose plays
func AllPurposeYardsPerPlay(t Totals) float64 {
	return safeDiv(AllPurposeYards(t), AllPurposePlays(t))
}

// TotalTackles = solo + assisted
func TotalTackles(t Totals) float64 {
	return t.Get(stats.CategoryDefense, "solo") + t.Get(stats.CategoryDefense, "asst")
}

// FieldGoalPct = field goals made / attempted * 100
func FieldGoalPct(t Totals) float64 {
	return safeDiv(t.Get(stats.CategoryKicking, "fgm"), t.Get(stats.CategoryKicking, "fga")) * 100
}

// YardsPerPunt = punting yards / punts
func YardsPerPunt(t Totals) float64 {
	return safeDiv(t.Get(stats.CategoryPunting, "yds"), t.Get(stats.CategoryPunting, "punts"))
}

// KickReturnAverage = kick return yards / returns
func KickReturnAverage(t Totals) float64 {
	return safeDiv(t.Get(stats.CategoryKickReturn, "yds"), t.Get(stats.CategoryKickReturn, "ret"))
}

// PuntReturnAverage = punt return yards / returns
func PuntReturnAverage(t Totals) float64 {
	return safeDiv(t.Get(stats.CategoryPuntReturn, "yds"), t.Get(stats.CategoryPuntReturn, "ret"))
}
