package importer

import (
	"testing"

	"github.com/dynastyhq/gridiron/internal/store"
)

func TestBuildNameIndex(t *testing.T) {
	players := []store.Player{
		{PlayerID: "qb1", Name: "Marcus Holloway"},
		{Name: "DeShawn   Carter"},
	}

	index := buildNameIndex(players)

	if index["marcus holloway"] != "qb1" {
		t.Errorf("expected existing ID to be kept, got %q", index["marcus holloway"])
	}

	generated := index["deshawn carter"]
	if generated == "" {
		t.Fatal("expected an ID to be generated for the unidentified player")
	}
	if players[1].PlayerID != generated {
		t.Errorf("generated ID not written back to the roster entry: %q vs %q", players[1].PlayerID, generated)
	}
}

func TestLinkBoxScore(t *testing.T) {
	index := map[string]string{
		"marcus holloway": "qb1",
		"jalen reed":      "wr1",
	}

	box := &store.BoxScore{
		Home: store.CategoryMap{
			"passing": {
				{PlayerName: "MARCUS HOLLOWAY", Fields: map[string]any{"yards": 301}},
			},
			"receiving": {
				{PlayerName: "Jalen  Reed", Fields: map[string]any{"yards": 120}},
				{PlayerName: "Unknown Walk-On", Fields: map[string]any{"yards": 8}},
			},
		},
		Away: store.CategoryMap{
			"passing": {
				{PlayerName: "Rival Passer", PlayerID: "opp-1", Fields: map[string]any{"yards": 215}},
			},
		},
	}

	linked, unmatched := linkBoxScore(box, index)

	if linked != 2 {
		t.Errorf("linked = %d, want 2", linked)
	}
	if unmatched != 1 {
		t.Errorf("unmatched = %d, want 1", unmatched)
	}
	if got := box.Home["passing"][0].PlayerID; got != "qb1" {
		t.Errorf("passing line PlayerID = %q, want qb1", got)
	}
	if got := box.Home["receiving"][0].PlayerID; got != "wr1" {
		t.Errorf("receiving line PlayerID = %q, want wr1", got)
	}
	if got := box.Home["receiving"][1].PlayerID; got != "" {
		t.Errorf("unmatched line should stay unlinked, got %q", got)
	}
	if got := box.Away["passing"][0].PlayerID; got != "opp-1" {
		t.Errorf("pre-linked line must not be rewritten, got %q", got)
	}
}

func TestLinkManualLines(t *testing.T) {
	index := map[string]string{"marcus holloway": "qb1"}

	lines := []store.ManualStatLine{
		{PlayerName: "marcus holloway", Fields: map[string]any{"yds": 2800}},
		{PlayerName: "Transfer Nobody", Fields: map[string]any{"yds": 100}},
	}

	linked, unmatched := linkManualLines(lines, index)

	if linked != 1 || unmatched != 1 {
		t.Errorf("linked/unmatched = %d/%d, want 1/1", linked, unmatched)
	}
	if lines[0].PlayerID != "qb1" {
		t.Errorf("line PlayerID = %q, want qb1", lines[0].PlayerID)
	}
}
