package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dynastyhq/gridiron/internal/store"
)

// PlayerRepository handles player data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByID finds a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (*store.Player, error) {
	query := `
		SELECT player_id, dynasty_id, name, position, jersey, team, teams_by_year, dev_trait,
			created_at, updated_at
		FROM players
		WHERE player_id = $1
	`

	p := &store.Player{}
	var teamsByYear []byte
	err := r.db.DB().QueryRowContext(ctx, query, playerID).Scan(
		&p.PlayerID, &p.DynastyID, &p.Name, &p.Position, &p.Jersey, &p.Team,
		&teamsByYear, &p.DevTrait, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found: %s", playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	if err := unmarshalTeamsByYear(teamsByYear, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetByDynasty returns the full roster for a dynasty
func (r *PlayerRepository) GetByDynasty(ctx context.Context, dynastyID string) ([]*store.Player, error) {
	query := `
		SELECT player_id, dynasty_id, name, position, jersey, team, teams_by_year, dev_trait,
			created_at, updated_at
		FROM players
		WHERE dynasty_id = $1
		ORDER BY name
	`

	rows, err := r.db.DB().QueryContext(ctx, query, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	return r.scanPlayers(rows)
}

// SearchByName finds dynasty players by name (case-insensitive partial match)
func (r *PlayerRepository) SearchByName(ctx context.Context, dynastyID, name string) ([]*store.Player, error) {
	query := `
		SELECT player_id, dynasty_id, name, position, jersey, team, teams_by_year, dev_trait,
			created_at, updated_at
		FROM players
		WHERE dynasty_id = $1 AND name ILIKE $2
		ORDER BY name
		LIMIT 50
	`

	rows, err := r.db.DB().QueryContext(ctx, query, dynastyID, "%"+name+"%")
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	return r.scanPlayers(rows)
}

// Upsert inserts or updates a player
func (r *PlayerRepository) Upsert(ctx context.Context, p *store.Player) error {
	teamsByYear, err := json.Marshal(teamsByYearKeys(p.TeamsByYear))
	if err != nil {
		return fmt.Errorf("marshaling teams_by_year: %w", err)
	}

	query := `
		INSERT INTO players (player_id, dynasty_id, name, position, jersey, team, teams_by_year, dev_trait)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (player_id) DO UPDATE SET
			name = EXCLUDED.name,
			position = EXCLUDED.position,
			jersey = EXCLUDED.jersey,
			team = EXCLUDED.team,
			teams_by_year = EXCLUDED.teams_by_year,
			dev_trait = EXCLUDED.dev_trait,
			updated_at = NOW()
	`

	_, err = r.db.DB().ExecContext(ctx, query,
		p.PlayerID, p.DynastyID, p.Name, p.Position, p.Jersey, p.Team, teamsByYear, p.DevTrait,
	)
	if err != nil {
		return fmt.Errorf("upserting player: %w", err)
	}

	return nil
}

// Delete removes a player
func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	result, err := r.db.DB().ExecContext(ctx, `DELETE FROM players WHERE player_id = $1`, playerID)
	if err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("player not found: %s", playerID)
	}

	return nil
}

func (r *PlayerRepository) scanPlayers(rows *sql.Rows) ([]*store.Player, error) {
	var players []*store.Player
	for rows.Next() {
		p := &store.Player{}
		var teamsByYear []byte
		if err := rows.Scan(
			&p.PlayerID, &p.DynastyID, &p.Name, &p.Position, &p.Jersey, &p.Team,
			&teamsByYear, &p.DevTrait, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		if err := unmarshalTeamsByYear(teamsByYear, p); err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, rows.Err()
}

// JSONB object keys are strings, but the model keys seasons by int. The two
// helpers below convert on the way in and out of the database.

func teamsByYearKeys(m map[int]string) map[string]string {
	out := make(map[string]string, len(m))
	for year, team := range m {
		out[fmt.Sprintf("%d", year)] = team
	}
	return out
}

func unmarshalTeamsByYear(data []byte, p *store.Player) error {
	if len(data) == 0 {
		return nil
	}
	raw := make(map[string]string)
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshaling teams_by_year: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}
	p.TeamsByYear = make(map[int]string, len(raw))
	for yearStr, team := range raw {
		var year int
		if _, err := fmt.Sscanf(yearStr, "%d", &year); err != nil {
			continue
		}
		p.TeamsByYear[year] = team
	}
	return nil
}
