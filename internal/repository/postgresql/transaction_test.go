package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_Commit(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTxManager(mock)
	repo := NewEmployeeRepository(mock)

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs("501").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		_, err := repo.ExistsByRegistrationID(ctx, "501")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_RollbackOnError(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTxManager(mock)
	want := errors.New("duplicate")

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectRollback()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return want
	})
	assert.ErrorIs(t, err, want)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_NestedReusesTransaction(t *testing.T) {
	mock := newMockPool(t)
	tm := NewTxManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return tm.WithTransaction(ctx, func(inner context.Context) error {
			_, ok := inner.Value(txContextKey{}).(pgx.Tx)
			assert.True(t, ok)
			return nil
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuerier_FallsBackWithoutTransaction(t *testing.T) {
	mock := newMockPool(t)
	assert.Equal(t, mock, GetQuerier(context.Background(), mock))
}
