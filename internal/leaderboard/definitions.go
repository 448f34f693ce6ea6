package leaderboard

import "github.com/dynastyhq/gridiron/internal/stats"

// Format selects how a leaderboard value renders
type Format string

const (
	FormatPct    Format = "pct"
	FormatAvg    Format = "avg"
	FormatRating Format = "rating"
	FormatCount  Format = "count"
)

// Threshold is a minimum-volume gate with separate career and season values
type Threshold struct {
	Season float64 `json:"season" mapstructure:"season"`
	Career float64 `json:"career" mapstructure:"career"`
}

// For picks the value matching the display mode
func (t Threshold) For(career bool) float64 {
	if career {
		return t.Career
	}
	return t.Season
}

// StatDefinition describes one leaderboard: its identity, how its value is
// computed from raw totals, and the qualification gate for calculated rate
// stats. Raw counting boards carry no gate.
type StatDefinition struct {
	Key           string
	Label         string
	Abbr          string
	Category      stats.Category
	Calculated    bool
	Format        Format
	LowerIsBetter bool

	// MinAtt gates on a volume count (attempts, receptions, punts,
	// returns); MinYds gates on cumulative yardage. Nil means no gate.
	MinAtt *Threshold
	MinYds *Threshold

	// Value computes the displayed number; Volume and YardsVolume supply
	// the quantities the gates compare against.
	Value       func(Totals) float64
	Volume      func(Totals) float64
	YardsVolume func(Totals) float64
}

func counting(cat stats.Category, field string) func(Totals) float64 {
	return func(t Totals) float64 { return t.Get(cat, field) }
}

var (
	passAttempts = counting(stats.CategoryPassing, "att")
	rushCarries  = counting(stats.CategoryRushing, "car")
	receptions   = counting(stats.CategoryReceiving, "rec")
	fgAttempts   = counting(stats.CategoryKicking, "fga")
	punts        = counting(stats.CategoryPunting, "punts")
	kickReturns  = counting(stats.CategoryKickReturn, "ret")
	puntReturns  = counting(stats.CategoryPuntReturn, "ret")
)

// Default qualification thresholds, overridable per stat key through the
// leaderboard configuration.
var defaultThresholds = map[string]Threshold{
	"cmpPct":     {Season: 75, Career: 200},
	"ypa":        {Season: 75, Career: 200},
	"aya":        {Season: 75, Career: 200},
	"rating":     {Season: 75, Career: 200},
	"passYpg":    {Season: 75, Career: 200},
	"tdPct":      {Season: 75, Career: 200},
	"intPct":     {Season: 75, Career: 200},
	"ypc":        {Season: 60, Career: 150},
	"ypr":        {Season: 20, Career: 50},
	"apYpp":      {Season: 500, Career: 1250},
	"fgPct":      {Season: 5, Career: 15},
	"puntAvg":    {Season: 10, Career: 25},
	"krAvg":      {Season: 10, Career: 25},
	"prAvg":      {Season: 10, Career: 25},
}

// DefaultThreshold returns the built-in gate for a stat key
func DefaultThreshold(key string) (Threshold, bool) {
	t, ok := defaultThresholds[key]
	return t, ok
}

func minAttFor(key string) *Threshold {
	t := defaultThresholds[key]
	return &t
}

// Definitions returns every leaderboard stat in display order
func Definitions() []StatDefinition {
	return []StatDefinition{
		// Passing
		{Key: "passYds", Label: "Passing Yards", Abbr: "YDS", Category: stats.CategoryPassing,
			Format: FormatCount, Value: counting(stats.CategoryPassing, "yds")},
		{Key: "passTD", Label: "Passing Touchdowns", Abbr: "TD", Category: stats.CategoryPassing,
			Format: FormatCount, Value: counting(stats.CategoryPassing, "td")},
		{Key: "cmpPct", Label: "Completion Percentage", Abbr: "CMP%", Category: stats.CategoryPassing,
			Calculated: true, Format: FormatPct, MinAtt: minAttFor("cmpPct"),
			Value: CompletionPct, Volume: passAttempts},
		{Key: "ypa", Label: "Yards per Attempt", Abbr: "Y/A", Category: stats.CategoryPassing,
			Calculated: true, Format: FormatAvg, MinAtt: minAttFor("ypa"),
			Value: YardsPerAttempt, Volume: passAttempts},
		{Key: "aya", Label: "Adjusted Yards per Attempt", Abbr: "AY/A", Category: stats.CategoryPassing,
			Calculated: true, Format: FormatAvg, MinAtt: minAttFor("aya"),
			Value: AdjustedYardsPerAttempt, Volume: passAttempts},
		{Key: "rating", Label: "Passer Rating", Abbr: "RTG", Category: stats.CategoryPassing,
			Calculated: true, Format: FormatRating, MinAtt: minAttFor("rating"),
			Value: PasserRating, Volume: passAttempts},
		{Key: "passYpg", Label: "Passing Yards per Game", Abbr: "Y/G", Category: stats.CategoryPassing,
			Calculated: true, Format: FormatAvg, MinAtt: minAttFor("passYpg"),
			Value: PassYardsPerGame, Volume: passAttempts},
		{Key: "tdPct", Label: "Touchdown Percentage", Abbr: "TD%", Category: stats.CategoryPassing,
			Calculated: true, Format: FormatPct, MinAtt: minAttFor("tdPct"),
			Value: TouchdownPct, Volume: passAttempts},
		{Key: "intPct", Label: "Interception Percentage", Abbr: "INT%", Category: stats.CategoryPassing,
			Calculated: true, Format: FormatPct, LowerIsBetter: true, MinAtt: minAttFor("intPct"),
			Value: InterceptionPct, Volume: passAttempts},

		// Rushing
		{Key: "rushYds", Label: "Rushing Yards", Abbr: "YDS", Category: stats.CategoryRushing,
			Format: FormatCount, Value: counting(stats.CategoryRushing, "yds")},
		{Key: "rushTD", Label: "Rushing Touchdowns", Abbr: "TD", Category: stats.CategoryRushing,
			Format: FormatCount, Value: counting(stats.CategoryRushing, "td")},
		{Key: "carries", Label: "Carries", Abbr: "CAR", Category: stats.CategoryRushing,
			Format: FormatCount, Value: rushCarries},
		{Key: "ypc", Label: "Yards per Carry", Abbr: "Y/C", Category: stats.CategoryRushing,
			Calculated: true, Format: FormatAvg, MinAtt: minAttFor("ypc"),
			Value: YardsPerCarry, Volume: rushCarries},

		// Receiving
		{Key: "recYds", Label: "Receiving Yards", Abbr: "YDS", Category: stats.CategoryReceiving,
			Format: FormatCount, Value: counting(stats.CategoryReceiving, "yds")},
		{Key: "recTD", Label: "Receiving Touchdowns", Abbr: "TD", Category: stats.CategoryReceiving,
			Format: FormatCount, Value: counting(stats.CategoryReceiving, "td")},
		{Key: "receptions", Label: "Receptions", Abbr: "REC", Category: stats.CategoryReceiving,
			Format: FormatCount, Value: receptions},
		{Key: "ypr", Label: "Yards per Reception", Abbr: "Y/R", Category: stats.CategoryReceiving,
			Calculated: true, Format: FormatAvg, MinAtt: minAttFor("ypr"),
			Value: YardsPerReception, Volume: receptions},

		// Scrimmage and all-purpose (derived categories)
		{Key: "scrimYds", Label: "Scrimmage Yards", Abbr: "YDS", Category: stats.CategoryRushing,
			Calculated: true, Format: FormatCount, Value: ScrimmageYards},
		{Key: "scrimTD", Label: "Scrimmage Touchdowns", Abbr: "TD", Category: stats.CategoryRushing,
			Calculated: true, Format: FormatCount, Value: ScrimmageTouchdowns},
		{Key: "apYds", Label: "All-Purpose Yards", Abbr: "YDS", Category: stats.CategoryRushing,
			Calculated: true, Format: FormatCount, Value: AllPurposeYards},
		{Key: "apTD", Label: "All-Purpose Touchdowns", Abbr: "TD", Category: stats.CategoryRushing,
			Calculated: true, Format: FormatCount, Value: AllPurposeTouchdowns},
		{Key: "apYpp", Label: "All-Purpose Yards per Play", Abbr: "Y/P", Category: stats.CategoryRushing,
			Calculated: true, Format: FormatAvg, MinYds: minAttFor("apYpp"),
			Value: AllPurposeYardsPerPlay, YardsVolume: AllPurposeYards},

		// Defense
		{Key: "tackles", Label: "Total Tackles", Abbr: "TKL", Category: stats.CategoryDefense,
			Calculated: true, Format: FormatCount, Value: TotalTackles},
		{Key: "sacks", Label: "Sacks", Abbr: "SACK", Category: stats.CategoryDefense,
			Format: FormatCount, Value: counting(stats.CategoryDefense, "sacks")},
		{Key: "tfl", Label: "Tackles for Loss", Abbr: "TFL", Category: stats.CategoryDefense,
			Format: FormatCount, Value: counting(stats.CategoryDefense, "tfl")},
		{Key: "defInt", Label: "Interceptions", Abbr: "INT", Category: stats.CategoryDefense,
			Format: FormatCount, Value: counting(stats.CategoryDefense, "int")},
		{Key: "forcedFum", Label: "Forced Fumbles", Abbr: "FF", Category: stats.CategoryDefense,
			Format: FormatCount, Value: counting(stats.CategoryDefense, "ff")},

		// Blocking
		{Key: "pancakes", Label: "Pancake Blocks", Abbr: "PAN", Category: stats.CategoryBlocking,
			Format: FormatCount, Value: counting(stats.CategoryBlocking, "pancakes")},

		// Kicking
		{Key: "fgm", Label: "Field Goals Made", Abbr: "FGM", Category: stats.CategoryKicking,
			Format: FormatCount, Value: counting(stats.CategoryKicking, "fgm")},
		{Key: "fgPct", Label: "Field Goal Percentage", Abbr: "FG%", Category: stats.CategoryKicking,
			Calculated: true, Format: FormatPct, MinAtt: minAttFor("fgPct"),
			Value: FieldGoalPct, Volume: fgAttempts},

		// Punting
		{Key: "puntAvg", Label: "Yards per Punt", Abbr: "AVG", Category: stats.CategoryPunting,
			Calculated: true, Format: FormatAvg, MinAtt: minAttFor("puntAvg"),
			Value: YardsPerPunt, Volume: punts},

		// Returns
		{Key: "krAvg", Label: "Kick Return Average", Abbr: "AVG", Category: stats.CategoryKickReturn,
			Calculated: true, Format: FormatAvg, MinAtt: minAttFor("krAvg"),
			Value: KickReturnAverage, Volume: kickReturns},
		{Key: "krTD", Label: "Kick Return Touchdowns", Abbr: "TD", Category: stats.CategoryKickReturn,
			Format: FormatCount, Value: counting(stats.CategoryKickReturn, "td")},
		{Key: "prAvg", Label: "Punt Return Average", Abbr: "AVG", Category: stats.CategoryPuntReturn,
			Calculated: true, Format: FormatAvg, MinAtt: minAttFor("prAvg"),
			Value: PuntReturnAverage, Volume: puntReturns},
		{Key: "prTD", Label: "Punt Return Touchdowns", Abbr: "TD", Category: stats.CategoryPuntReturn,
			Format: FormatCount, Value: counting(stats.CategoryPuntReturn, "td")},
	}
}
