package stats

import (
	"strings"

	"github.com/dynastyhq/gridiron/internal/store"
)

// GameCountsForPlayer decides whether a game's stats may be credited to the
// player for the target year. A game contributes only when:
//   - it belongs to the target season,
//   - it is not a CPU-only game,
//   - the player's team for that year matches the roster whose games are
//     being scanned.
//
// The team-for-year rule keeps a transferred player's old-team and new-team
// stats from bleeding together: a game against the player's former team
// credits nothing, because in that game the player was the opponent.
func GameCountsForPlayer(p *store.Player, year int, game *store.GameRecord) bool {
	if p == nil || game == nil {
		return false
	}
	if game.Year != year {
		return false
	}
	if game.IsCPUGame() {
		return false
	}

	teamForYear := p.TeamForYear(year)
	if teamForYear == "" {
		return false
	}

	return strings.EqualFold(teamForYear, game.UserTeam)
}
