package session

//go:generate mockgen -source=manager.go -destination=manager_mock.go -package=session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-games-journal/internal/jwt"
	"github.com/sbilibin2017/gw-games-journal/internal/logger"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
)

// Tokener issues and reads session tokens.
type Tokener interface {
	Generate(ctx context.Context, userID int64, tokenID string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Expiration() time.Duration
}

// UserGetter loads the user a token refers to.
type UserGetter interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Store remembers live token ids so that a session can be ended before its
// token expires.
type Store interface {
	Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Delete(ctx context.Context, tokenID string) error
}

// Manager starts, resumes and ends sessions.
type Manager struct {
	tokener Tokener
	users   UserGetter
	store   Store
}

// NewManager creates a Manager. store may be nil, in which case a session
// lives until its token expires.
func NewManager(tokener Tokener, users UserGetter, store Store) *Manager {
	return &Manager{tokener: tokener, users: users, store: store}
}

// Start opens a session for user.
func (m *Manager) Start(ctx context.Context, user models.User) (*Session, error) {
	tokenID := uuid.NewString()

	token, err := m.tokener.Generate(ctx, user.ID, tokenID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "userID", user.ID, "error", err)
		return nil, err
	}

	if m.store != nil {
		if err := m.store.Save(ctx, tokenID, user.ID, m.tokener.Expiration()); err != nil {
			logger.Log.Errorw("failed to save session", "userID", user.ID, "error", err)
			return nil, err
		}
	}

	logger.Log.Infow("session started", "userID", user.ID, "username", user.Username)
	return &Session{Token: token, TokenID: tokenID, User: user}, nil
}

// Resume rebuilds the session behind the request's bearer token.
func (m *Manager) Resume(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	claims, err := m.tokener.GetClaims(ctx, token)
	if err != nil {
		return nil, err
	}

	if m.store != nil {
		ok, err := m.store.Exists(ctx, claims.ID)
		if err != nil {
			logger.Log.Errorw("failed to look up session", "error", err)
			return nil, err
		}
		if !ok {
			return nil, ErrSessionNotFound
		}
	}

	user, err := m.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}

	return &Session{Token: token, TokenID: claims.ID, User: *user}, nil
}

// End signs the session out.
func (m *Manager) End(ctx context.Context, s *Session) error {
	if m.store == nil {
		logger.Log.Debugw("no session store configured, token stays valid until expiry", "userID", s.User.ID)
		return nil
	}

	if err := m.store.Delete(ctx, s.TokenID); err != nil {
		logger.Log.Errorw("failed to end session", "userID", s.User.ID, "error", err)
		return err
	}

	logger.Log.Infow("session ended", "userID", s.User.ID)
	return nil
}
