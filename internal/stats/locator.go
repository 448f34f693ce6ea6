package stats

import (
	"strings"

	"github.com/dynastyhq/gridiron/internal/store"
)

// Side identifies which half of a box score a stat line came from
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
	// SideUnknown lets the locator fall back to first-side-wins search
	SideUnknown Side = ""
)

// GameStats holds every category match found for one player in one game,
// already translated to canonical field names
type GameStats struct {
	Side       Side
	Categories map[Category]map[string]float64
}

// NormalizeName lowercases a display name and collapses internal whitespace
// so "Joe  Burrow " matches "joe burrow". Matching is otherwise exact.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// FindPlayerInGame searches a game's box score for every category entry
// belonging to the named player. With a side hint only that side is
// searched. Without one, home is searched before away and the first side
// with any match wins — the other side is never consulted, so a duplicate
// name on the opposing team cannot double-count.
func FindPlayerInGame(name string, game *store.GameRecord, hint Side) (*GameStats, bool) {
	if game == nil || game.BoxScore == nil {
		return nil, false
	}

	target := NormalizeName(name)
	if target == "" {
		return nil, false
	}

	sides := []struct {
		side Side
		cats store.CategoryMap
	}{
		{SideHome, game.BoxScore.Home},
		{SideAway, game.BoxScore.Away},
	}

	for _, s := range sides {
		if hint != SideUnknown && hint != s.side {
			continue
		}
		if found := matchSide(target, s.cats); len(found) > 0 {
			return &GameStats{Side: s.side, Categories: found}, true
		}
	}

	return nil, false
}

// matchSide collects all category entries on one side matching the
// normalized target name
func matchSide(target string, cats store.CategoryMap) map[Category]map[string]float64 {
	var found map[Category]map[string]float64

	for _, cat := range Categories() {
		lines, ok := cats[string(cat)]
		if !ok {
			continue
		}
		for i := range lines {
			if NormalizeName(lines[i].PlayerName) != target {
				continue
			}
			if found == nil {
				found = make(map[Category]map[string]float64)
			}
			found[cat] = TranslateBox(cat, lines[i].Fields)
			break
		}
	}

	return found
}
