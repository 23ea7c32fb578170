package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-games-journal/internal/logger"
)

const createUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		avatar TEXT
	);
`

const createGamesTable = `
	CREATE TABLE IF NOT EXISTS games (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		platform TEXT NOT NULL,
		genre TEXT NOT NULL,
		cover_image TEXT
	);
`

const createReviewsTable = `
	CREATE TABLE IF NOT EXISTS reviews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		game_id INTEGER NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT NOT NULL,
		created_at TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE
	);
`

var schema = []string{
	createUsersTable,
	createGamesTable,
	createReviewsTable,
	`CREATE INDEX IF NOT EXISTS idx_reviews_game_id ON reviews (game_id);`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_user_id ON reviews (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_created_at ON reviews (created_at);`,
}

// CreateSchema creates the users, games and reviews tables if they are absent.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)
		logger.Query(stmt, nil, nil, err)
		if err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Initialize prepares an opened store for use: foreign keys, schema and seed data.
// It is safe to call on every start.
func Initialize(ctx context.Context, db *sqlx.DB) error {
	if err := EnableForeignKeys(ctx, db); err != nil {
		return err
	}
	if err := CreateSchema(ctx, db); err != nil {
		return err
	}
	if err := Seed(ctx, db, time.Now()); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	logger.Log.Info("store initialized")
	return nil
}
