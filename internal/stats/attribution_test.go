package stats

import (
	"testing"

	"github.com/dynastyhq/gridiron/internal/store"
)

func TestGameCountsForPlayer(t *testing.T) {
	game := func(year int, userTeam string) *store.GameRecord {
		return &store.GameRecord{Year: year, UserTeam: userTeam, Opponent: "MICH"}
	}

	cases := []struct {
		name   string
		player *store.Player
		year   int
		game   *store.GameRecord
		want   bool
	}{
		{
			name:   "current team matches scanned roster",
			player: &store.Player{Name: "A", Team: "OSU"},
			year:   2027,
			game:   game(2027, "OSU"),
			want:   true,
		},
		{
			name:   "year history overrides current team",
			player: &store.Player{Name: "A", Team: "BAMA", TeamsByYear: map[int]string{2026: "OSU"}},
			year:   2026,
			game:   game(2026, "OSU"),
			want:   true,
		},
		{
			name:   "transferred player excluded from old team year",
			player: &store.Player{Name: "A", Team: "BAMA", TeamsByYear: map[int]string{2027: "BAMA"}},
			year:   2027,
			game:   game(2027, "OSU"),
			want:   false,
		},
		{
			name:   "no history and current team differs",
			player: &store.Player{Name: "A", Team: "BAMA"},
			year:   2026,
			game:   game(2026, "OSU"),
			want:   false,
		},
		{
			name:   "wrong season year",
			player: &store.Player{Name: "A", Team: "OSU"},
			year:   2026,
			game:   game(2027, "OSU"),
			want:   false,
		},
		{
			name:   "team abbreviation matches case-insensitively",
			player: &store.Player{Name: "A", Team: "osu"},
			year:   2027,
			game:   game(2027, "OSU"),
			want:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GameCountsForPlayer(tc.player, tc.year, tc.game); got != tc.want {
				t.Errorf("GameCountsForPlayer = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGameCountsForPlayer_CPUGameExcluded(t *testing.T) {
	cpu := &store.GameRecord{Year: 2027, UserTeam: "OSU", Team1: "USC", Team2: "UCLA"}
	player := &store.Player{Name: "A", Team: "OSU"}

	if GameCountsForPlayer(player, 2027, cpu) {
		t.Error("CPU game (two team identifiers, no opponent) must be excluded")
	}
}

func TestTeamForYear_Fallback(t *testing.T) {
	p := &store.Player{Team: "OSU", TeamsByYear: map[int]string{2026: "BAMA"}}

	if got := p.TeamForYear(2026); got != "BAMA" {
		t.Errorf("TeamForYear(2026) = %q, want BAMA", got)
	}
	if got := p.TeamForYear(2027); got != "OSU" {
		t.Errorf("TeamForYear(2027) = %q, want current-team fallback OSU", got)
	}
}
