package service

import (
	"testing"

	"github.com/dynastyhq/gridiron/internal/leaderboard"
	"github.com/dynastyhq/gridiron/internal/reconcile"
	"github.com/dynastyhq/gridiron/internal/stats"
	"github.com/dynastyhq/gridiron/internal/store"
)

func TestGroupManualSheets(t *testing.T) {
	players := []*store.Player{
		{PlayerID: "qb1", Name: "Marcus Holloway"},
		{PlayerID: "rb1", Name: "DeShawn Carter"},
	}

	sheets := []*store.ManualSeasonStats{
		{
			DynastyID: "d1", Year: 2027, Category: "passing",
			Entries: []store.ManualStatLine{
				{PlayerName: "MARCUS  HOLLOWAY", Fields: map[string]any{"cmp": 210, "att": 320, "yds": 2950, "tds": 28, "gp": 13}},
			},
		},
		{
			DynastyID: "d1", Year: 2027, Category: "rushing",
			Entries: []store.ManualStatLine{
				{PlayerID: "rb1", PlayerName: "DeShawn Carter", Fields: map[string]any{"car": 190, "yds": 1104, "tds": 12, "gp": 12}},
				{PlayerName: "Not On Roster", Fields: map[string]any{"car": 4, "yds": 18}},
			},
		},
	}

	grouped := groupManualSheets(players, sheets)

	qb := grouped[seasonKey{"qb1", 2027}]
	if qb == nil {
		t.Fatal("expected a sheet for qb1/2027 via name matching")
	}
	passing := qb.Categories[stats.CategoryPassing]
	if passing["yds"] != 2950 || passing["td"] != 28 {
		t.Errorf("passing fields = %v, want canonical yds/td", passing)
	}
	if qb.GamesPlayed != 13 {
		t.Errorf("GamesPlayed = %d, want 13 from the gp column", qb.GamesPlayed)
	}

	rb := grouped[seasonKey{"rb1", 2027}]
	if rb == nil {
		t.Fatal("expected a sheet for rb1/2027 via explicit ID")
	}
	if rb.Categories[stats.CategoryRushing]["yds"] != 1104 {
		t.Errorf("rushing yds = %v, want 1104", rb.Categories[stats.CategoryRushing]["yds"])
	}

	if len(grouped) != 2 {
		t.Errorf("grouped %d player-seasons, want 2 (off-roster line skipped)", len(grouped))
	}
}

func TestBuildRowsCareer(t *testing.T) {
	players := []*store.Player{
		{PlayerID: "qb1", Name: "Marcus Holloway", Team: "State"},
	}

	s1 := stats.NewSeasonAggregate("qb1", 2026)
	s1.Categories[stats.CategoryPassing] = map[string]float64{"yds": 2400, "lng": 61}
	s1.GamesPlayed = 12
	s2 := stats.NewSeasonAggregate("qb1", 2027)
	s2.Categories[stats.CategoryPassing] = map[string]float64{"yds": 2950, "lng": 45}
	s2.GamesPlayed = 13

	seasons := map[string][]*stats.SeasonAggregate{"qb1": {s1, s2}}

	rows := buildRows(players, seasons, reconcile.ModeCareer, false)

	if len(rows) != 1 {
		t.Fatalf("career mode produced %d rows, want 1", len(rows))
	}
	row := rows[0]
	if got := row.Totals.Get(stats.CategoryPassing, "yds"); got != 5350 {
		t.Errorf("career yds = %v, want 5350", got)
	}
	if got := row.Totals.Get(stats.CategoryPassing, "lng"); got != 106 {
		t.Errorf("career lng = %v, want 106 (longs sum across seasons)", got)
	}
	if len(row.Years) != 2 || row.Years[0] != 2026 || row.Years[1] != 2027 {
		t.Errorf("Years = %v, want [2026 2027]", row.Years)
	}
}

func TestBuildRowsSeasonUsesYearTeam(t *testing.T) {
	players := []*store.Player{
		{
			PlayerID:    "wr1",
			Name:        "Jalen Reed",
			Team:        "Tech",
			TeamsByYear: map[int]string{2026: "State"},
		},
	}

	s1 := stats.NewSeasonAggregate("wr1", 2026)
	s1.Categories[stats.CategoryReceiving] = map[string]float64{"rec": 60, "yds": 900}
	s2 := stats.NewSeasonAggregate("wr1", 2027)
	s2.Categories[stats.CategoryReceiving] = map[string]float64{"rec": 70, "yds": 1050}

	seasons := map[string][]*stats.SeasonAggregate{"wr1": {s1, s2}}

	rows := buildRows(players, seasons, reconcile.ModeSeason, false)

	if len(rows) != 2 {
		t.Fatalf("season mode produced %d rows, want 2", len(rows))
	}
	if rows[0].Year != 2026 || rows[0].Team != "State" {
		t.Errorf("2026 row team = %q, want the transfer-year team", rows[0].Team)
	}
	if rows[1].Year != 2027 || rows[1].Team != "Tech" {
		t.Errorf("2027 row team = %q, want the current team fallback", rows[1].Team)
	}
}

func TestBuildRowsSortedByName(t *testing.T) {
	players := []*store.Player{
		{PlayerID: "b", Name: "Zeke Moore"},
		{PlayerID: "a", Name: "Aaron Bell"},
	}

	mk := func(pid string) *stats.SeasonAggregate {
		s := stats.NewSeasonAggregate(pid, 2027)
		s.Categories[stats.CategoryRushing] = map[string]float64{"yds": 500}
		return s
	}
	seasons := map[string][]*stats.SeasonAggregate{
		"b": {mk("b")},
		"a": {mk("a")},
	}

	rows := buildRows(players, seasons, reconcile.ModeSeason, false)

	if rows[0].Name != "Aaron Bell" || rows[1].Name != "Zeke Moore" {
		t.Errorf("rows not name-sorted: %q, %q", rows[0].Name, rows[1].Name)
	}

	// Tied values keep that order through the stable leaderboard sort
	def := leaderboard.StatDefinition{
		Key:      "rushYds",
		Category: stats.CategoryRushing,
		Value: func(tot leaderboard.Totals) float64 {
			return tot.Get(stats.CategoryRushing, "yds")
		},
	}
	entries := leaderboard.Build(def, reconcile.ModeSeason, rows, leaderboard.Config{})
	if entries[0].Name != "Aaron Bell" {
		t.Errorf("tie broken against alphabetical order: %q first", entries[0].Name)
	}
}

func TestCollectYears(t *testing.T) {
	games := []*store.GameRecord{
		{Year: 2027}, {Year: 2026}, {Year: 2027},
	}
	sheets := []*store.ManualSeasonStats{
		{Year: 2025}, {Year: 2026},
	}

	years := collectYears(games, sheets)

	want := []int{2025, 2026, 2027}
	if len(years) != len(want) {
		t.Fatalf("years = %v, want %v", years, want)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Fatalf("years = %v, want %v", years, want)
		}
	}
}
