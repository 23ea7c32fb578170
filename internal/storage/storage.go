// Package storage owns the embedded SQLite store: opening the handle,
// creating the schema and seeding baseline rows.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-games-journal/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver used for the store.
const DriverName = "sqlite3"

// ErrForeignKeysDisabled is returned when the opened connection does not enforce foreign keys.
var ErrForeignKeysDisabled = errors.New("sqlite foreign key enforcement is disabled")

// DSN builds the driver connection string for a database file.
// ":memory:" yields a private in-memory database.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)
}

// Open opens the store at path and verifies foreign-key enforcement.
// The pool is limited to one connection: the journal has a single consumer,
// and an in-memory database only lives as long as its connection.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverName, DSN(path))
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := EnableForeignKeys(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Log.Infow("store opened", "path", path)
	return db, nil
}

// EnableForeignKeys turns on foreign-key checking and confirms it took effect.
func EnableForeignKeys(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}

	var enabled int
	if err := db.GetContext(ctx, &enabled, `PRAGMA foreign_keys`); err != nil {
		return fmt.Errorf("read foreign keys pragma: %w", err)
	}
	if enabled != 1 {
		return ErrForeignKeysDisabled
	}
	return nil
}
