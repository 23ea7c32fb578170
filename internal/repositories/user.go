package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-games-journal/internal/logger"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
)

const selectUsers = `SELECT id, username, email, avatar FROM users`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// List returns every user ordered by username.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	const query = selectUsers + ` ORDER BY username ASC`

	var rows []models.UserDB
	err := r.db.SelectContext(ctx, &rows, query)
	logger.Query(query, nil, len(rows), err)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, models.MapUser(row))
	}
	return users, nil
}

// GetByID returns the user with id, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return getUser(ctx, r.db, selectUsers+` WHERE id = ? LIMIT 1`, id)
}

// GetByUsername returns the user with username, or nil when there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return getUser(ctx, r.db, selectUsers+` WHERE username = ? LIMIT 1`, username)
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns the stored row.
func (r *UserWriteRepository) Save(ctx context.Context, username, email string, avatar *string) (*models.User, error) {
	const query = `INSERT INTO users (username, email, avatar) VALUES (?, ?, ?)`
	args := []any{username, email, avatar}

	id, err := insert(ctx, r.db, query, args...)
	if err != nil {
		return nil, err
	}

	user, err := getUser(ctx, r.db, selectUsers+` WHERE id = ? LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotPersisted
	}
	return user, nil
}

func getUser(ctx context.Context, db sqlx.QueryerContext, query string, args ...any) (*models.User, error) {
	var row models.UserDB
	err := sqlx.GetContext(ctx, db, &row, query, args...)
	logger.Query(query, args, row, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user := models.MapUser(row)
	return &user, nil
}

// insert executes an INSERT and returns the generated row id.
func insert(ctx context.Context, db sqlx.ExecerContext, query string, args ...any) (int64, error) {
	var id int64
	res, err := db.ExecContext(ctx, query, args...)
	if err == nil {
		id, err = res.LastInsertId()
	}
	logger.Query(query, args, id, err)
	return id, err
}
