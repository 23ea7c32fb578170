package models

// Review event operations.
const (
	OperationReviewCreated = "review.created"
)

// ReviewEvent is published after a review has been stored.
type ReviewEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	ReviewID  int64  `json:"review_id"`  // ReviewID is the stored review's primary key.
	UserID    int64  `json:"user_id"`    // UserID is the author of the review.
	GameID    int64  `json:"game_id"`    // GameID is the reviewed game.
	Rating    int    `json:"rating"`     // Rating is the 1..5 score.
	CreatedAt string `json:"created_at"` // CreatedAt is the review's ISO-8601 timestamp.
	Operation string `json:"operation"`  // Operation describes the event type, e.g. "review.created".
}
