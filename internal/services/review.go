package services

//go:generate mockgen -source=review.go -destination=review_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-games-journal/internal/logger"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
	"github.com/segmentio/kafka-go"
)

// DefaultRecentReviews is how many reviews ListRecentReviews returns.
const DefaultRecentReviews = 20

// ReviewReader defines review listings.
type ReviewReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.ReviewDetail, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.ReviewDetail, error)
}

// ReviewWriter defines review creation.
type ReviewWriter interface {
	Save(ctx context.Context, input models.CreateReviewInput) (*models.Review, error)
}

// GameDetailsGetter resolves a game with its reviews.
type GameDetailsGetter interface {
	GetGameDetails(ctx context.Context, gameID int64) (*models.GameDetails, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ReviewService handles the review journal and publishes review events.
type ReviewService struct {
	reader      ReviewReader
	writer      ReviewWriter
	games       GameDetailsGetter
	kafkaWriter KafkaWriter
}

// NewReviewService creates a new ReviewService. kafkaWriter may be nil.
func NewReviewService(
	reader ReviewReader,
	writer ReviewWriter,
	games GameDetailsGetter,
	kafkaWriter KafkaWriter,
) *ReviewService {
	return &ReviewService{
		reader:      reader,
		writer:      writer,
		games:       games,
		kafkaWriter: kafkaWriter,
	}
}

// ListRecentReviews returns the newest reviews across all users.
func (s *ReviewService) ListRecentReviews(ctx context.Context, limit int) ([]models.ReviewDetail, error) {
	if limit <= 0 {
		limit = DefaultRecentReviews
	}

	reviews, err := s.reader.ListRecent(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to list recent reviews", "limit", limit, "error", err)
		return nil, err
	}
	return reviews, nil
}

// ListReviewsByUser returns a user's reviews, newest first.
func (s *ReviewService) ListReviewsByUser(ctx context.Context, userID int64) ([]models.ReviewDetail, error) {
	reviews, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user reviews", "userID", userID, "error", err)
		return nil, err
	}
	return reviews, nil
}

// GetGameDetailsWithReviews returns a game with its reviews, or nil when absent.
func (s *ReviewService) GetGameDetailsWithReviews(ctx context.Context, gameID int64) (*models.GameDetails, error) {
	return s.games.GetGameDetails(ctx, gameID)
}

// CreateReviewEntry validates and stores a review.
// Rating and comment are checked before anything touches storage.
func (s *ReviewService) CreateReviewEntry(ctx context.Context, input models.CreateReviewInput) (*models.Review, error) {
	if input.Rating < models.MinRating || input.Rating > models.MaxRating {
		return nil, ErrInvalidRating
	}
	input.Comment = strings.TrimSpace(input.Comment)
	if input.Comment == "" {
		return nil, ErrCommentRequired
	}

	review, err := s.writer.Save(ctx, input)
	if err != nil {
		logger.Log.Errorw("failed to save review", "userID", input.UserID, "gameID", input.GameID, "error", err)
		return nil, err
	}

	s.publishReview(ctx, *review)
	return review, nil
}

// publishReview publishes a review-created event to Kafka.
func (s *ReviewService) publishReview(ctx context.Context, review models.Review) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "review_id", review.ID)
		return
	}

	event := models.ReviewEvent{
		EventID:   uuid.NewString(),
		ReviewID:  review.ID,
		UserID:    review.UserID,
		GameID:    review.GameID,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
		Operation: models.OperationReviewCreated,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal review event for Kafka", "review_id", review.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(review.GameID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish review event to Kafka", "review_id", review.ID, "error", err)
	} else {
		logger.Log.Infow("Review event published to Kafka", "review_id", review.ID, "game_id", review.GameID)
	}
}
