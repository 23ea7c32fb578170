package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-games-journal/internal/logger"
	"github.com/sbilibin2017/gw-games-journal/internal/session"
)

// Sessioner resumes the session behind a request's bearer token.
type Sessioner interface {
	Resume(ctx context.Context, r *http.Request) (*session.Session, error)
}

// AuthMiddleware rejects requests without a live session and hands the
// session to the next handler through the request context.
func AuthMiddleware(sessioner Sessioner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			s, err := sessioner.Resume(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithContext(ctx, s)))
		})
	}
}
