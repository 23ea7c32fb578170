package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-games-journal/internal/logger"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
	"github.com/sbilibin2017/gw-games-journal/internal/services"
	"github.com/sbilibin2017/gw-games-journal/internal/session"
)

// Registerer defines the sign-up operation.
type Registerer interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (*models.User, error)
}

// Loginer looks a user up by username.
type Loginer interface {
	LoginWithUsername(ctx context.Context, username string) (*models.User, error)
}

// SessionStarter opens a session for a signed-in user.
type SessionStarter interface {
	Start(ctx context.Context, user models.User) (*session.Session, error)
}

// SessionEnder closes a session.
type SessionEnder interface {
	End(ctx context.Context, s *session.Session) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: playerone
	Username string `json:"username" validate:"required,max=50"`

	// Email
	// required: true
	// default: player1@example.com
	Email string `json:"email" validate:"required,email"`

	// Avatar reference: URL, data URI or relative path
	Avatar *string `json:"avatar,omitempty"`
}

// LoginRequest represents the JSON body for username login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: playerone
	Username string `json:"username" validate:"required"`
}

// LoginResponse carries the session token and its user
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token
	Token string `json:"token"`
	// Signed-in user
	User models.User `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user. Usernames are unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} models.User "User registered"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already taken"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		user, err := svc.RegisterUser(r.Context(), models.Credentials{
			Username: req.Username,
			Email:    req.Email,
			Avatar:   req.Avatar,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken),
				errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusConflict, err.Error())
			case errors.Is(err, services.ErrCredentialsRequired):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewLoginHandler returns an HTTP handler for username login.
// @Summary Log in
// @Description Starts a session for an existing username. 404 means the caller should sign up.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Session started"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sessions SessionStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		ctx := r.Context()
		user, err := svc.LoginWithUsername(ctx, req.Username)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if user == nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		s, err := sessions.Start(ctx, *user)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: s.Token, User: s.User})
	}
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// @Summary Log out
// @Tags auth
// @Success 204 "Session ended"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(sessions SessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		s, ok := session.FromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := sessions.End(ctx, s); err != nil {
			writeInternalError(w, err)
			return
		}

		logger.Log.Infow("user logged out", "userID", s.User.ID)
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewMeHandler returns the signed-in user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.User "Signed-in user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := session.FromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		writeJSON(w, http.StatusOK, s.User)
	}
}
