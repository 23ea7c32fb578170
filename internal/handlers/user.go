package handlers

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-games-journal/internal/models"
)

// UserLister lists users.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UserGetter loads one user.
type UserGetter interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// UserReviewLister lists a user's reviews.
type UserReviewLister interface {
	ListReviewsByUser(ctx context.Context, userID int64) ([]models.ReviewDetail, error)
}

// NewListUsersHandler returns every user.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetUserHandler returns one user.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}

		user, err := svc.GetUserByID(r.Context(), id)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if user == nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewUserReviewsHandler returns a user's reviews, newest first.
// @Summary User reviews
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.ReviewDetail
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Router /users/{id}/reviews [get]
func NewUserReviewsHandler(svc UserReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}

		reviews, err := svc.ListReviewsByUser(r.Context(), id)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
	}
}
