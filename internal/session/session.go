// Package session tracks who is signed in. A Session is an explicit value
// handed to callers and carried on the request context by the auth middleware.
package session

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-games-journal/internal/models"
)

// ErrSessionNotFound is returned when a token is valid but its session has
// ended or its user no longer exists.
var ErrSessionNotFound = errors.New("session not found")

// Session is the signed-in user together with the token that proves it.
type Session struct {
	Token   string      `json:"token"`
	TokenID string      `json:"-"`
	User    models.User `json:"user"`
}

type ctxKey struct{}

// WithContext returns a copy of ctx carrying s.
func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by WithContext.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
