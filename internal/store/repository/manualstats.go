package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dynastyhq/gridiron/internal/store"
)

// ManualStatsRepository handles manual season stat sheet data access
type ManualStatsRepository struct {
	db *store.Database
}

// NewManualStatsRepository creates a new manual stats repository
func NewManualStatsRepository(db *store.Database) *ManualStatsRepository {
	return &ManualStatsRepository{db: db}
}

// GetByDynasty returns every manual sheet recorded for a dynasty
func (r *ManualStatsRepository) GetByDynasty(ctx context.Context, dynastyID string) ([]*store.ManualSeasonStats, error) {
	query := `
		SELECT id, dynasty_id, year, category, entries, created_at, updated_at
		FROM manual_season_stats
		WHERE dynasty_id = $1
		ORDER BY year, category
	`

	rows, err := r.db.DB().QueryContext(ctx, query, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("querying manual stats: %w", err)
	}
	defer rows.Close()

	return r.scanSheets(rows)
}

// GetByDynastyYear returns all manual sheets for a single season
func (r *ManualStatsRepository) GetByDynastyYear(ctx context.Context, dynastyID string, year int) ([]*store.ManualSeasonStats, error) {
	query := `
		SELECT id, dynasty_id, year, category, entries, created_at, updated_at
		FROM manual_season_stats
		WHERE dynasty_id = $1 AND year = $2
		ORDER BY category
	`

	rows, err := r.db.DB().QueryContext(ctx, query, dynastyID, year)
	if err != nil {
		return nil, fmt.Errorf("querying manual stats: %w", err)
	}
	defer rows.Close()

	return r.scanSheets(rows)
}

// Upsert inserts or replaces the sheet for one dynasty/year/category
func (r *ManualStatsRepository) Upsert(ctx context.Context, s *store.ManualSeasonStats) error {
	entries, err := json.Marshal(s.Entries)
	if err != nil {
		return fmt.Errorf("marshaling entries: %w", err)
	}

	query := `
		INSERT INTO manual_season_stats (id, dynasty_id, year, category, entries)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (dynasty_id, year, category) DO UPDATE SET
			entries = EXCLUDED.entries,
			updated_at = NOW()
	`

	_, err = r.db.DB().ExecContext(ctx, query, s.ID, s.DynastyID, s.Year, s.Category, entries)
	if err != nil {
		return fmt.Errorf("upserting manual stats: %w", err)
	}

	return nil
}

// Delete removes the sheet for one dynasty/year/category
func (r *ManualStatsRepository) Delete(ctx context.Context, dynastyID string, year int, category string) error {
	query := `DELETE FROM manual_season_stats WHERE dynasty_id = $1 AND year = $2 AND category = $3`

	result, err := r.db.DB().ExecContext(ctx, query, dynastyID, year, category)
	if err != nil {
		return fmt.Errorf("deleting manual stats: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("manual stats not found: %s/%d/%s", dynastyID, year, category)
	}

	return nil
}

func (r *ManualStatsRepository) scanSheets(rows *sql.Rows) ([]*store.ManualSeasonStats, error) {
	var sheets []*store.ManualSeasonStats
	for rows.Next() {
		s := &store.ManualSeasonStats{}
		var entries []byte
		if err := rows.Scan(&s.ID, &s.DynastyID, &s.Year, &s.Category, &entries, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning manual stats: %w", err)
		}
		if len(entries) > 0 {
			if err := json.Unmarshal(entries, &s.Entries); err != nil {
				return nil, fmt.Errorf("unmarshaling entries: %w", err)
			}
		}
		sheets = append(sheets, s)
	}

	return sheets, rows.Err()
}
