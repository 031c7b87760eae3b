package postgresql

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmoldes/roster-backend/internal/domain/preference"
)

func TestPreferenceRepository_Get(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPreferenceRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM preferences WHERE key = $1`)).
		WithArgs(preference.KeyTheme).
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("light"))

	value, err := repo.Get(context.Background(), preference.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Get_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPreferenceRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM preferences`)).
		WithArgs(preference.KeyTheme).
		WillReturnRows(pgxmock.NewRows([]string{"value"}))

	_, err := repo.Get(context.Background(), preference.KeyTheme)
	assert.ErrorIs(t, err, preference.ErrPreferenceNotFound)
}

func TestPreferenceRepository_Set(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPreferenceRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO preferences`)).
		WithArgs(preference.KeyTheme, "dark").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Set(context.Background(), preference.KeyTheme, "dark"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
