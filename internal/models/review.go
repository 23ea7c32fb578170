package models

import (
	"database/sql"
	"time"
)

// TimestampLayout is the ISO-8601 layout stored in reviews.created_at.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Rating bounds accepted for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Review is a single user's rating and comment on a game.
type Review struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	GameID    int64  `json:"game_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// ReviewDB represents a review row in the database
type ReviewDB struct {
	ID        int64  `db:"id"`
	UserID    int64  `db:"user_id"`
	GameID    int64  `db:"game_id"`
	Rating    int    `db:"rating"`
	Comment   string `db:"comment"`
	CreatedAt string `db:"created_at"`
}

// ReviewDetail joins a review with its author and game.
type ReviewDetail struct {
	Review Review `json:"review"`
	User   User   `json:"user"`
	Game   Game   `json:"game"`
}

// ReviewDetailDB is the flat row produced by the reviews/users/games join.
type ReviewDetailDB struct {
	ReviewDB
	Username   string         `db:"username"`
	Email      string         `db:"email"`
	Avatar     sql.NullString `db:"avatar"`
	Title      string         `db:"title"`
	Platform   string         `db:"platform"`
	Genre      string         `db:"genre"`
	CoverImage sql.NullString `db:"cover_image"`
}

// RatingAggregate is the per-game average and count computed by the store.
type RatingAggregate struct {
	AverageRating *float64
	ReviewCount   int
}

// RatingAggregateDB is the raw AVG/COUNT row.
type RatingAggregateDB struct {
	AverageRating sql.NullFloat64 `db:"average_rating"`
	ReviewCount   int             `db:"review_count"`
}

// CreateReviewInput carries the fields a caller supplies for a new review.
type CreateReviewInput struct {
	UserID  int64  `json:"user_id"`
	GameID  int64  `json:"game_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
