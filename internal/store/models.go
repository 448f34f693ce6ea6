package store

import (
	"encoding/json"
	"time"
)

// Dynasty represents one multi-season save file
type Dynasty struct {
	DynastyID   string    `json:"dynasty_id" db:"dynasty_id"`
	Name        string    `json:"name" db:"name"`
	UserTeam    string    `json:"user_team" db:"user_team"`
	CurrentYear int       `json:"current_year" db:"current_year"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Player represents a roster entry within a dynasty
type Player struct {
	PlayerID    string         `json:"pid" db:"player_id"`
	DynastyID   string         `json:"dynasty_id" db:"dynasty_id"`
	Name        string         `json:"name" db:"name"`
	Position    string         `json:"position,omitempty" db:"position"`
	Jersey      string         `json:"jersey,omitempty" db:"jersey"`
	Team        string         `json:"team" db:"team"`
	TeamsByYear map[int]string `json:"teamsByYear,omitempty" db:"teams_by_year"`
	DevTrait    string         `json:"devTrait,omitempty" db:"dev_trait"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// TeamForYear returns the team the player belonged to in the given season,
// falling back to the current team when no year entry exists.
func (p *Player) TeamForYear(year int) string {
	if team, ok := p.TeamsByYear[year]; ok && team != "" {
		return team
	}
	return p.Team
}

// GameRecord represents one played game and its box score
type GameRecord struct {
	GameID        string    `json:"game_id" db:"game_id"`
	DynastyID     string    `json:"dynasty_id" db:"dynasty_id"`
	Year          int       `json:"year" db:"year"`
	Week          int       `json:"week" db:"week"`
	UserTeam      string    `json:"userTeam" db:"user_team"`
	Opponent      string    `json:"opponent,omitempty" db:"opponent"`
	Team1         string    `json:"team1,omitempty" db:"team1"`
	Team2         string    `json:"team2,omitempty" db:"team2"`
	TeamScore     int       `json:"teamScore" db:"team_score"`
	OpponentScore int       `json:"opponentScore" db:"opponent_score"`
	Result        string    `json:"result,omitempty" db:"result"`
	BoxScore      *BoxScore `json:"boxScore,omitempty" db:"box_score"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// IsCPUGame reports whether the game was simulated between two CPU teams.
// Such games carry both team identifiers but no designated opponent and
// never involve the tracked roster directly.
func (g *GameRecord) IsCPUGame() bool {
	return g.Opponent == "" && g.Team1 != "" && g.Team2 != ""
}

// BoxScore holds per-team category stat arrays for one game
type BoxScore struct {
	Home CategoryMap `json:"home"`
	Away CategoryMap `json:"away"`
}

// CategoryMap maps a category name ("passing", "rushing", ...) to the
// stat lines recorded for that category on one side of a game
type CategoryMap map[string][]PlayerGameStat

// PlayerGameStat is one player's raw stat line for a single game category.
// The field set is free-form JSON: the schema registry decides which fields
// are meaningful, everything else is ignored.
type PlayerGameStat struct {
	PlayerName string
	PlayerID   string
	Fields     map[string]any
}

// MarshalJSON flattens Fields alongside playerName
func (s PlayerGameStat) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Fields)+2)
	for k, v := range s.Fields {
		out[k] = v
	}
	out["playerName"] = s.PlayerName
	if s.PlayerID != "" {
		out["pid"] = s.PlayerID
	}
	return json.Marshal(out)
}

// UnmarshalJSON pulls playerName/pid out and keeps the rest as raw fields
func (s *PlayerGameStat) UnmarshalJSON(data []byte) error {
	raw := make(map[string]any)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["playerName"].(string); ok {
		s.PlayerName = v
	}
	if v, ok := raw["pid"].(string); ok {
		s.PlayerID = v
	}
	delete(raw, "playerName")
	delete(raw, "pid")
	s.Fields = raw
	return nil
}

// ManualSeasonStats is one manually entered end-of-season stat sheet for a
// single dynasty/year/category, independent of any box score
type ManualSeasonStats struct {
	ID        string           `json:"id" db:"id"`
	DynastyID string           `json:"dynasty_id" db:"dynasty_id"`
	Year      int              `json:"year" db:"year"`
	Category  string           `json:"category" db:"category"`
	Entries   []ManualStatLine `json:"entries" db:"entries"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}

// ManualStatLine is one player's row on a manual stat sheet. Fields use the
// short-field naming scheme, distinct from box-score field names.
type ManualStatLine struct {
	PlayerID   string
	PlayerName string
	Fields     map[string]any
}

// MarshalJSON flattens Fields alongside the identifying keys
func (l ManualStatLine) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l.Fields)+2)
	for k, v := range l.Fields {
		out[k] = v
	}
	out["playerName"] = l.PlayerName
	if l.PlayerID != "" {
		out["pid"] = l.PlayerID
	}
	return json.Marshal(out)
}

// UnmarshalJSON pulls playerName/pid out and keeps the rest as raw fields
func (l *ManualStatLine) UnmarshalJSON(data []byte) error {
	raw := make(map[string]any)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["playerName"].(string); ok {
		l.PlayerName = v
	}
	if v, ok := raw["pid"].(string); ok {
		l.PlayerID = v
	}
	delete(raw, "playerName")
	delete(raw, "pid")
	l.Fields = raw
	return nil
}
