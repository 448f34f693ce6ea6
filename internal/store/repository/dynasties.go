package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dynastyhq/gridiron/internal/store"
)

// DynastyRepository handles dynasty data access
type DynastyRepository struct {
	db *store.Database
}

// NewDynastyRepository creates a new dynasty repository
func NewDynastyRepository(db *store.Database) *DynastyRepository {
	return &DynastyRepository{db: db}
}

// GetByID finds a dynasty by ID
func (r *DynastyRepository) GetByID(ctx context.Context, dynastyID string) (*store.Dynasty, error) {
	query := `
		SELECT dynasty_id, name, user_team, current_year, created_at, updated_at
		FROM dynasties
		WHERE dynasty_id = $1
	`

	d := &store.Dynasty{}
	err := r.db.DB().QueryRowContext(ctx, query, dynastyID).Scan(
		&d.DynastyID, &d.Name, &d.UserTeam, &d.CurrentYear, &d.CreatedAt, &d.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("dynasty not found: %s", dynastyID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying dynasty: %w", err)
	}

	return d, nil
}

// GetAll returns all dynasties ordered by name
func (r *DynastyRepository) GetAll(ctx context.Context) ([]*store.Dynasty, error) {
	query := `
		SELECT dynasty_id, name, user_team, current_year, created_at, updated_at
		FROM dynasties
		ORDER BY name
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying dynasties: %w", err)
	}
	defer rows.Close()

	var dynasties []*store.Dynasty
	for rows.Next() {
		d := &store.Dynasty{}
		if err := rows.Scan(&d.DynastyID, &d.Name, &d.UserTeam, &d.CurrentYear, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning dynasty: %w", err)
		}
		dynasties = append(dynasties, d)
	}

	return dynasties, rows.Err()
}

// Upsert inserts or updates a dynasty
func (r *DynastyRepository) Upsert(ctx context.Context, d *store.Dynasty) error {
	query := `
		INSERT INTO dynasties (dynasty_id, name, user_team, current_year)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (dynasty_id) DO UPDATE SET
			name = EXCLUDED.name,
			user_team = EXCLUDED.user_team,
			current_year = EXCLUDED.current_year,
			updated_at = NOW()
	`

	_, err := r.db.DB().ExecContext(ctx, query, d.DynastyID, d.Name, d.UserTeam, d.CurrentYear)
	if err != nil {
		return fmt.Errorf("upserting dynasty: %w", err)
	}

	return nil
}

// Delete removes a dynasty and all of its dependent rows
func (r *DynastyRepository) Delete(ctx context.Context, dynastyID string) error {
	result, err := r.db.DB().ExecContext(ctx, `DELETE FROM dynasties WHERE dynasty_id = $1`, dynastyID)
	if err != nil {
		return fmt.Errorf("deleting dynasty: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("dynasty not found: %s", dynastyID)
	}

	return nil
}
