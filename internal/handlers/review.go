package handlers

//go:generate mockgen -source=review.go -destination=review_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-games-journal/internal/models"
	"github.com/sbilibin2017/gw-games-journal/internal/services"
	"github.com/sbilibin2017/gw-games-journal/internal/session"
	"github.com/sbilibin2017/gw-games-journal/internal/storage"
)

// RecentReviewLister returns the review feed.
type RecentReviewLister interface {
	ListRecentReviews(ctx context.Context, limit int) ([]models.ReviewDetail, error)
}

// ReviewCreator stores a new review.
type ReviewCreator interface {
	CreateReviewEntry(ctx context.Context, input models.CreateReviewInput) (*models.Review, error)
}

// CreateReviewRequest represents the JSON body for a new review.
// Rating bounds and blank comments are checked by the journal itself.
// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	// Game ID
	// required: true
	GameID int64 `json:"game_id" validate:"required,gt=0"`

	// Rating from 1 to 5
	// required: true
	// default: 5
	Rating int `json:"rating"`

	// Comment
	// required: true
	Comment string `json:"comment" validate:"max=2000"`
}

// NewRecentReviewsHandler returns the newest reviews.
// @Summary Recent reviews
// @Tags reviews
// @Produce json
// @Param limit query int false "Maximum number of reviews, default 20"
// @Success 200 {array} models.ReviewDetail
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Router /reviews/recent [get]
func NewRecentReviewsHandler(svc RecentReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			limit = n
		}

		reviews, err := svc.ListRecentReviews(r.Context(), limit)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
	}
}

// NewCreateReviewHandler stores a review by the signed-in user.
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Param createReviewRequest body handlers.CreateReviewRequest true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} handlers.ErrorResponse "Invalid rating, blank comment, unknown game or user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /reviews [post]
// @Security BearerAuth
func NewCreateReviewHandler(svc ReviewCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		s, ok := session.FromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateReviewRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		review, err := svc.CreateReviewEntry(ctx, models.CreateReviewInput{
			UserID:  s.User.ID,
			GameID:  req.GameID,
			Rating:  req.Rating,
			Comment: req.Comment,
		})
		if err != nil {
			switch {
			case services.IsValidationError(err):
				writeError(w, http.StatusBadRequest, err.Error())
			case storage.IsForeignKeyViolation(err):
				writeError(w, http.StatusBadRequest, "Unknown game or user")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, review)
	}
}
