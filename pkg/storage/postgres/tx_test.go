package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"careeros/pkg/domain"
	"careeros/pkg/storage"
	"careeros/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countUsers(t *testing.T, db *sql.DB, id domain.UserID) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM users WHERE clerk_id = $1`, string(id))
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.CompleteUserProfile(ctx, domain.User{ID: "user_committed", Name: "Ada"})
	require.NoError(t, err)
	require.Equal(t, 0, countUsers(t, db, "user_committed"))
	require.NoError(t, tx.Commit())
	require.Equal(t, 1, countUsers(t, db, "user_committed"))

	tx, err = pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.CompleteUserProfile(ctx, domain.User{ID: "user_rolled_back", Name: "Grace"})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	require.Equal(t, 0, countUsers(t, db, "user_rolled_back"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.CompleteUserProfile(ctx, domain.User{ID: "user_a"})

		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, countUsers(t, db, "user_a"))

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.CompleteUserProfile(ctx, domain.User{ID: "user_b"}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, countUsers(t, db, "user_b"))
}
