package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-games-journal/internal/logger"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
)

const (
	coverZelda = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAEAAAABACAYAAACqaXHeAAAAGUlEQVR4nO3BMQEAAADCoPdPbQ43oAAAAAAAAADwG6+DAAGApF1YAAAAAElFTkSuQmCC"
	coverDark  = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAEAAAABACAYAAACqaXHeAAAAGUlEQVR4nO3BMQEAAADCoPdPbQ43oAAAAAAAAADwG6+DAAFwKpCFAAAAAElFTkSuQmCC"
)

type seedUser struct {
	username string
	email    string
}

type seedGame struct {
	title    string
	platform string
	genre    string
	cover    string
}

type seedReview struct {
	username string
	title    string
	rating   int
	comment  string
	age      time.Duration
}

var seedUsers = []seedUser{
	{username: "playerone", email: "player1@example.com"},
	{username: "arcadequeen", email: "arcade@example.com"},
}

var seedGames = []seedGame{
	{title: "The Legend of Zelda: Breath of the Wild", platform: "Nintendo Switch", genre: "Action-Adventure", cover: coverZelda},
	{title: "Elden Ring", platform: "PC", genre: "Action RPG", cover: coverDark},
	{title: "Hades", platform: "PC", genre: "Roguelike", cover: coverDark},
}

var seedReviews = []seedReview{
	{username: "playerone", title: "Elden Ring", rating: 5, comment: "A masterpiece of world-building with challenging combat."},
	{username: "arcadequeen", title: "Hades", rating: 4, comment: "Fast-paced and incredibly stylish with a gripping narrative.", age: 24 * time.Hour},
}

// Seed inserts baseline users, games and reviews into any table that is empty.
// Statements are not grouped in a transaction; an interrupted seed is completed
// on the next start because each table is re-checked.
func Seed(ctx context.Context, db *sqlx.DB, now time.Time) error {
	empty, err := isEmpty(ctx, db, "users")
	if err != nil {
		return err
	}
	if empty {
		for _, u := range seedUsers {
			if err := exec(ctx, db, `INSERT INTO users (username, email, avatar) VALUES (?, ?, NULL)`, u.username, u.email); err != nil {
				return err
			}
		}
	}

	empty, err = isEmpty(ctx, db, "games")
	if err != nil {
		return err
	}
	if empty {
		for _, g := range seedGames {
			if err := exec(ctx, db, `INSERT INTO games (title, platform, genre, cover_image) VALUES (?, ?, ?, ?)`, g.title, g.platform, g.genre, g.cover); err != nil {
				return err
			}
		}
	}

	empty, err = isEmpty(ctx, db, "reviews")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	for _, r := range seedReviews {
		var userID, gameID int64
		if err := db.GetContext(ctx, &userID, `SELECT id FROM users WHERE username = ?`, r.username); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				logger.Log.Warnw("seed review skipped, user missing", "username", r.username)
				continue
			}
			return err
		}
		if err := db.GetContext(ctx, &gameID, `SELECT id FROM games WHERE title = ?`, r.title); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				logger.Log.Warnw("seed review skipped, game missing", "title", r.title)
				continue
			}
			return err
		}
		createdAt := models.FormatTimestamp(now.Add(-r.age))
		if err := exec(ctx, db,
			`INSERT INTO reviews (user_id, game_id, rating, comment, created_at) VALUES (?, ?, ?, ?, ?)`,
			userID, gameID, r.rating, r.comment, createdAt,
		); err != nil {
			return err
		}
	}
	return nil
}

// isEmpty reports whether table has no rows. table is always one of the
// fixed names above, never caller input.
func isEmpty(ctx context.Context, db *sqlx.DB, table string) (bool, error) {
	query := `SELECT COUNT(*) FROM ` + table
	var count int
	err := db.GetContext(ctx, &count, query)
	logger.Query(query, nil, count, err)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func exec(ctx context.Context, db *sqlx.DB, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logger.Query(query, args, rowsAffected, err)
	return err
}
