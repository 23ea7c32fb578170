package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-games-journal/internal/logger"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
)

// DefaultRecentLimit is used by ListRecent when no positive limit is given.
const DefaultRecentLimit = 20

const selectReviewDetails = `
	SELECT r.id, r.user_id, r.game_id, r.rating, r.comment, r.created_at,
	       u.username, u.email, u.avatar,
	       g.title, g.platform, g.genre, g.cover_image
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	JOIN games g ON g.id = r.game_id`

// Newest first; created_at text and id break ties within the same second.
const orderByRecency = `
	ORDER BY datetime(r.created_at) DESC, r.created_at DESC, r.id DESC`

// ReviewReadRepository reads reviews joined with their user and game.
type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// ListRecent returns the newest reviews across all users, at most limit of them.
func (r *ReviewReadRepository) ListRecent(ctx context.Context, limit int) ([]models.ReviewDetail, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return r.selectDetails(ctx, selectReviewDetails+orderByRecency+` LIMIT ?`, limit)
}

// ListByGameID returns a game's reviews, newest first.
func (r *ReviewReadRepository) ListByGameID(ctx context.Context, gameID int64) ([]models.ReviewDetail, error) {
	return r.selectDetails(ctx, selectReviewDetails+` WHERE r.game_id = ?`+orderByRecency, gameID)
}

// ListByUserID returns a user's reviews, newest first.
func (r *ReviewReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.ReviewDetail, error) {
	return r.selectDetails(ctx, selectReviewDetails+` WHERE r.user_id = ?`+orderByRecency, userID)
}

// GetAggregateByGameID returns the average rating and review count of a game
// as computed by the store.
func (r *ReviewReadRepository) GetAggregateByGameID(ctx context.Context, gameID int64) (models.RatingAggregate, error) {
	const query = `
		SELECT AVG(rating) AS average_rating, COUNT(*) AS review_count
		FROM reviews
		WHERE game_id = ?`

	var row models.RatingAggregateDB
	err := r.db.GetContext(ctx, &row, query, gameID)
	logger.Query(query, []any{gameID}, row, err)
	if err != nil {
		return models.RatingAggregate{}, err
	}
	return models.MapRatingAggregate(row), nil
}

func (r *ReviewReadRepository) selectDetails(ctx context.Context, query string, args ...any) ([]models.ReviewDetail, error) {
	var rows []models.ReviewDetailDB
	err := r.db.SelectContext(ctx, &rows, query, args...)
	logger.Query(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}

	details := make([]models.ReviewDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, models.MapReviewDetail(row))
	}
	return details, nil
}

// ReviewWriteRepository stores new reviews.
type ReviewWriteRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db, now: time.Now}
}

// Save inserts a review stamped with the current time and returns the stored row.
func (r *ReviewWriteRepository) Save(ctx context.Context, input models.CreateReviewInput) (*models.Review, error) {
	const query = `
		INSERT INTO reviews (user_id, game_id, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?)`
	args := []any{input.UserID, input.GameID, input.Rating, input.Comment, models.FormatTimestamp(r.now())}

	id, err := insert(ctx, r.db, query, args...)
	if err != nil {
		return nil, err
	}

	const selectQuery = `
		SELECT id, user_id, game_id, rating, comment, created_at
		FROM reviews
		WHERE id = ?`

	var row models.ReviewDB
	err = r.db.GetContext(ctx, &row, selectQuery, id)
	logger.Query(selectQuery, []any{id}, row, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotPersisted
	}
	if err != nil {
		return nil, err
	}

	review := models.MapReview(row)
	return &review, nil
}
