package importer

import "github.com/dynastyhq/gridiron/internal/store"

// Document is one full dynasty export: the save metadata together with the
// roster, played games, and any manual stat sheets, imported in one shot
type Document struct {
	Dynasty     store.Dynasty             `json:"dynasty"`
	Players     []store.Player            `json:"players"`
	Games       []store.GameRecord        `json:"games"`
	ManualStats []store.ManualSeasonStats `json:"manualStats,omitempty"`
}

// Summary reports what an import touched
type Summary struct {
	DynastyID      string `json:"dynasty_id"`
	Players        int    `json:"players"`
	Games          int    `json:"games"`
	ManualSheets   int    `json:"manual_sheets"`
	LinkedLines    int    `json:"linked_lines"`
	UnmatchedLines int    `json:"unmatched_lines"`
}
