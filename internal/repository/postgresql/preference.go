package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wmoldes/roster-backend/internal/domain/preference"
	"github.com/wmoldes/roster-backend/internal/pkg/database"
)

type preferenceRepositoryImpl struct {
	db database.Querier
}

func NewPreferenceRepository(db database.Querier) preference.PreferenceRepository {
	return &preferenceRepositoryImpl{db: db}
}

// Get implements preference.PreferenceRepository.
func (p *preferenceRepositoryImpl) Get(ctx context.Context, key string) (string, error) {
	q := GetQuerier(ctx, p.db)

	var value string
	err := q.QueryRow(ctx, `SELECT value FROM preferences WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", preference.ErrPreferenceNotFound
		}
		return "", fmt.Errorf("failed to get preference %s: %w", key, err)
	}
	return value, nil
}

// Set implements preference.PreferenceRepository.
func (p *preferenceRepositoryImpl) Set(ctx context.Context, key string, value string) error {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}
	return nil
}
