package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-games-journal/internal/storage"
	"github.com/stretchr/testify/require"
)

var seedTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// setupStore returns an in-memory store with the schema and baseline rows.
func setupStore(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.CreateSchema(ctx, db))
	require.NoError(t, storage.Seed(ctx, db, seedTime))
	return db
}

func idOf(t *testing.T, db *sqlx.DB, query string, arg any) int64 {
	t.Helper()

	var id int64
	require.NoError(t, db.Get(&id, query, arg))
	return id
}

func userID(t *testing.T, db *sqlx.DB, username string) int64 {
	return idOf(t, db, `SELECT id FROM users WHERE username = ?`, username)
}

func gameID(t *testing.T, db *sqlx.DB, title string) int64 {
	return idOf(t, db, `SELECT id FROM games WHERE title = ?`, title)
}
