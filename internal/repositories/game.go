package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-games-journal/internal/logger"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
)

const selectGames = `SELECT id, title, platform, genre, cover_image FROM games`

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GameReadRepository reads the game catalogue.
type GameReadRepository struct {
	db *sqlx.DB
}

func NewGameReadRepository(db *sqlx.DB) *GameReadRepository {
	return &GameReadRepository{db: db}
}

// List returns every game ordered by title.
func (r *GameReadRepository) List(ctx context.Context) ([]models.Game, error) {
	return r.selectGames(ctx, selectGames+` ORDER BY title ASC`)
}

// GetByID returns the game with id, or nil when there is none.
func (r *GameReadRepository) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	const query = selectGames + ` WHERE id = ? LIMIT 1`

	var row models.GameDB
	err := r.db.GetContext(ctx, &row, query, id)
	logger.Query(query, []any{id}, row, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	game := models.MapGame(row)
	return &game, nil
}

// Search returns games whose title, platform or genre contains query,
// ignoring ASCII case. Blank queries are the caller's concern.
func (r *GameReadRepository) Search(ctx context.Context, query string) ([]models.Game, error) {
	const stmt = selectGames + `
		WHERE title LIKE ? ESCAPE '\'
		   OR platform LIKE ? ESCAPE '\'
		   OR genre LIKE ? ESCAPE '\'
		ORDER BY title ASC`

	pattern := "%" + likeEscaper.Replace(strings.TrimSpace(query)) + "%"
	return r.selectGames(ctx, stmt, pattern, pattern, pattern)
}

func (r *GameReadRepository) selectGames(ctx context.Context, query string, args ...any) ([]models.Game, error) {
	var rows []models.GameDB
	err := r.db.SelectContext(ctx, &rows, query, args...)
	logger.Query(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}

	games := make([]models.Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, models.MapGame(row))
	}
	return games, nil
}
