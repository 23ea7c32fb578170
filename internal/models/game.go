package models

import "database/sql"

// Game is a catalogue entry that can be reviewed.
type Game struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Platform   string  `json:"platform"`
	Genre      string  `json:"genre"`
	CoverImage *string `json:"cover_image"` // Often a data URI; nil when not set
}

// GameDB represents a game row in the database
type GameDB struct {
	ID         int64          `db:"id"`
	Title      string         `db:"title"`
	Platform   string         `db:"platform"`
	Genre      string         `db:"genre"`
	CoverImage sql.NullString `db:"cover_image"`
}

// GameDetails is a game together with its reviews and rating aggregate.
type GameDetails struct {
	Game          Game           `json:"game"`
	Reviews       []ReviewDetail `json:"reviews"`
	AverageRating *float64       `json:"average_rating"` // nil when the game has no reviews
	ReviewCount   int            `json:"review_count"`
}
