package stats

import (
	"testing"

	"github.com/dynastyhq/gridiron/internal/store"
)

func passingLine(name string, fields map[string]any) store.PlayerGameStat {
	return store.PlayerGameStat{PlayerName: name, Fields: fields}
}

func gameWithBox(home, away store.CategoryMap) *store.GameRecord {
	return &store.GameRecord{
		Year:     2027,
		UserTeam: "OSU",
		Opponent: "MICH",
		BoxScore: &store.BoxScore{Home: home, Away: away},
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Joe Burrow", "joe burrow"},
		{"  JOE   BURROW ", "joe burrow"},
		{"joe\tburrow", "joe burrow"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFindPlayerInGame_MatchesCaseAndWhitespace(t *testing.T) {
	game := gameWithBox(store.CategoryMap{
		"passing": {passingLine("  JOE   Burrow ", map[string]any{"attempts": 30, "yards": 300})},
	}, nil)

	found, ok := FindPlayerInGame("joe burrow", game, SideUnknown)
	if !ok {
		t.Fatal("expected match")
	}
	if found.Side != SideHome {
		t.Errorf("Side = %q, want home", found.Side)
	}
	if found.Categories[CategoryPassing]["yds"] != 300 {
		t.Errorf("yds = %v, want 300", found.Categories[CategoryPassing]["yds"])
	}
}

func TestFindPlayerInGame_FirstSideWins(t *testing.T) {
	// Same name on both sides: home matches first and away is never read.
	game := gameWithBox(
		store.CategoryMap{"passing": {passingLine("John Smith", map[string]any{"yards": 100})}},
		store.CategoryMap{
			"passing": {passingLine("John Smith", map[string]any{"yards": 250})},
			"rushing": {passingLine("John Smith", map[string]any{"yards": 40})},
		},
	)

	found, ok := FindPlayerInGame("John Smith", game, SideUnknown)
	if !ok {
		t.Fatal("expected match")
	}
	if found.Side != SideHome {
		t.Fatalf("Side = %q, want home", found.Side)
	}
	if got := found.Categories[CategoryPassing]["yds"]; got != 100 {
		t.Errorf("yds = %v, want home side's 100", got)
	}
	if _, ok := found.Categories[CategoryRushing]; ok {
		t.Error("away-side rushing must not leak into a home-side match")
	}
}

func TestFindPlayerInGame_SideHint(t *testing.T) {
	game := gameWithBox(
		store.CategoryMap{"passing": {passingLine("John Smith", map[string]any{"yards": 100})}},
		store.CategoryMap{"passing": {passingLine("John Smith", map[string]any{"yards": 250})}},
	)

	found, ok := FindPlayerInGame("John Smith", game, SideAway)
	if !ok {
		t.Fatal("expected match")
	}
	if found.Side != SideAway {
		t.Fatalf("Side = %q, want away", found.Side)
	}
	if got := found.Categories[CategoryPassing]["yds"]; got != 250 {
		t.Errorf("yds = %v, want away side's 250", got)
	}
}

func TestFindPlayerInGame_CollectsAllCategoriesOnMatchedSide(t *testing.T) {
	game := gameWithBox(store.CategoryMap{
		"rushing":   {passingLine("Sam Hill", map[string]any{"carries": 12, "yards": 80})},
		"receiving": {passingLine("Sam Hill", map[string]any{"receptions": 3, "yards": 25})},
	}, nil)

	found, ok := FindPlayerInGame("Sam Hill", game, SideUnknown)
	if !ok {
		t.Fatal("expected match")
	}
	if len(found.Categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(found.Categories))
	}
	if found.Categories[CategoryReceiving]["rec"] != 3 {
		t.Errorf("rec = %v, want 3", found.Categories[CategoryReceiving]["rec"])
	}
}

func TestFindPlayerInGame_NoMatch(t *testing.T) {
	game := gameWithBox(store.CategoryMap{
		"passing": {passingLine("John Smith", map[string]any{"yards": 100})},
	}, nil)

	if _, ok := FindPlayerInGame("Jon Smith", game, SideUnknown); ok {
		t.Error("misspelled name must not match")
	}
	if _, ok := FindPlayerInGame("John Smith", &store.GameRecord{}, SideUnknown); ok {
		t.Error("game without box score must not match")
	}
}

func TestFindPlayerInGame_UnknownFieldsDropped(t *testing.T) {
	game := gameWithBox(store.CategoryMap{
		"passing": {passingLine("John Smith", map[string]any{
			"yards":    "212", // numeric string coerces
			"swagger":  99,    // not a passing field
			"attempts": nil,   // unparsable coerces to 0
		})},
	}, nil)

	found, _ := FindPlayerInGame("John Smith", game, SideUnknown)
	fields := found.Categories[CategoryPassing]
	if fields["yds"] != 212 {
		t.Errorf("yds = %v, want 212", fields["yds"])
	}
	if _, ok := fields["swagger"]; ok {
		t.Error("unknown field must be dropped")
	}
	if fields["att"] != 0 {
		t.Errorf("att = %v, want coerced 0", fields["att"])
	}
}
