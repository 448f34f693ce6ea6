package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dynastyhq/gridiron/internal/store"
)

// GameRepository handles game data access
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

// GetByID finds a game by ID
func (r *GameRepository) GetByID(ctx context.Context, gameID string) (*store.GameRecord, error) {
	query := `
		SELECT game_id, dynasty_id, year, week, user_team, opponent, team1, team2,
			team_score, opponent_score, result, box_score, created_at, updated_at
		FROM games
		WHERE game_id = $1
	`

	g := &store.GameRecord{}
	var boxScore []byte
	err := r.db.DB().QueryRowContext(ctx, query, gameID).Scan(
		&g.GameID, &g.DynastyID, &g.Year, &g.Week, &g.UserTeam, &g.Opponent,
		&g.Team1, &g.Team2, &g.TeamScore, &g.OpponentScore, &g.Result,
		&boxScore, &g.CreatedAt, &g.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game: %w", err)
	}

	if err := unmarshalBoxScore(boxScore, g); err != nil {
		return nil, err
	}

	return g, nil
}

// GetByDynasty returns all games for a dynasty ordered by year and week
func (r *GameRepository) GetByDynasty(ctx context.Context, dynastyID string) ([]*store.GameRecord, error) {
	query := `
		SELECT game_id, dynasty_id, year, week, user_team, opponent, team1, team2,
			team_score, opponent_score, result, box_score, created_at, updated_at
		FROM games
		WHERE dynasty_id = $1
		ORDER BY year, week
	`

	rows, err := r.db.DB().QueryContext(ctx, query, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// GetByDynastyYear returns all games for a dynasty in a single season
func (r *GameRepository) GetByDynastyYear(ctx context.Context, dynastyID string, year int) ([]*store.GameRecord, error) {
	query := `
		SELECT game_id, dynasty_id, year, week, user_team, opponent, team1, team2,
			team_score, opponent_score, result, box_score, created_at, updated_at
		FROM games
		WHERE dynasty_id = $1 AND year = $2
		ORDER BY week
	`

	rows, err := r.db.DB().QueryContext(ctx, query, dynastyID, year)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// Upsert inserts or updates a game
func (r *GameRepository) Upsert(ctx context.Context, g *store.GameRecord) error {
	var boxScore []byte
	if g.BoxScore != nil {
		var err error
		boxScore, err = json.Marshal(g.BoxScore)
		if err != nil {
			return fmt.Errorf("marshaling box score: %w", err)
		}
	}

	query := `
		INSERT INTO games (game_id, dynasty_id, year, week, user_team, opponent, team1, team2,
			team_score, opponent_score, result, box_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (game_id) DO UPDATE SET
			year = EXCLUDED.year,
			week = EXCLUDED.week,
			user_team = EXCLUDED.user_team,
			opponent = EXCLUDED.opponent,
			team1 = EXCLUDED.team1,
			team2 = EXCLUDED.team2,
			team_score = EXCLUDED.team_score,
			opponent_score = EXCLUDED.opponent_score,
			result = EXCLUDED.result,
			box_score = EXCLUDED.box_score,
			updated_at = NOW()
	`

	_, err := r.db.DB().ExecContext(ctx, query,
		g.GameID, g.DynastyID, g.Year, g.Week, g.UserTeam, g.Opponent, g.Team1, g.Team2,
		g.TeamScore, g.OpponentScore, g.Result, boxScore,
	)
	if err != nil {
		return fmt.Errorf("upserting game: %w", err)
	}

	return nil
}

// Delete removes a game
func (r *GameRepository) Delete(ctx context.Context, gameID string) error {
	result, err := r.db.DB().ExecContext(ctx, `DELETE FROM games WHERE game_id = $1`, gameID)
	if err != nil {
		return fmt.Errorf("deleting game: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("game not found: %s", gameID)
	}

	return nil
}

func (r *GameRepository) scanGames(rows *sql.Rows) ([]*store.GameRecord, error) {
	var games []*store.GameRecord
	for rows.Next() {
		g := &store.GameRecord{}
		var boxScore []byte
		if err := rows.Scan(
			&g.GameID, &g.DynastyID, &g.Year, &g.Week, &g.UserTeam, &g.Opponent,
			&g.Team1, &g.Team2, &g.TeamScore, &g.OpponentScore, &g.Result,
			&boxScore, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		if err := unmarshalBoxScore(boxScore, g); err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

func unmarshalBoxScore(data []byte, g *store.GameRecord) error {
	if len(data) == 0 {
		return nil
	}
	box := &store.BoxScore{}
	if err := json.Unmarshal(data, box); err != nil {
		return fmt.Errorf("unmarshaling box score: %w", err)
	}
	g.BoxScore = box
	return nil
}
