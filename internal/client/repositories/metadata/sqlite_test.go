package metadata

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "currentUser", []byte(`{"id":"1"}`)))

	v, err := r.Get(ctx, "currentUser")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"id":"1"}`), v)
}

func TestGet_Missing_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestDelete_IsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", []byte{0x01}))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestWorksInsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteRepository(tx).Set(ctx, "k", []byte("v")))
	require.NoError(t, tx.Rollback())

	v, err := NewSQLiteRepository(db).Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v, "rolled back write must not be visible")
}

func TestGet_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	v, err := r.Get(context.Background(), "k")
	require.Error(t, err)
	require.Nil(t, v)
	require.Contains(t, err.Error(), "failed to get metadata[k]")
}

func TestSetDelete_DBErrorWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	boom := errors.New("disk I/O error")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO metadata`)).
		WithArgs("k", []byte("v")).
		WillReturnError(boom)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM metadata WHERE key = ?`)).
		WithArgs("k").
		WillReturnError(boom)

	r := NewSQLiteRepository(db)
	ctx := context.Background()

	err = r.Set(ctx, "k", []byte("v"))
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "failed to set metadata[k]")

	err = r.Delete(ctx, "k")
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "failed to delete metadata[k]")

	require.NoError(t, mock.ExpectationsWereMet())
}
