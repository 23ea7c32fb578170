package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
	"github.com/sbilibin2017/gw-games-journal/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	live := &session.Session{Token: "validtoken", TokenID: "tid", User: models.User{ID: 1, Username: "playerone"}}

	tests := []struct {
		name             string
		mockSetup        func(m *MockSessioner)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoSession",
			mockSetup: func(m *MockSessioner) {
				m.EXPECT().Resume(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "EndedSession",
			mockSetup: func(m *MockSessioner) {
				m.EXPECT().Resume(gomock.Any(), gomock.Any()).
					Return(nil, session.ErrSessionNotFound)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "LiveSession",
			mockSetup: func(m *MockSessioner) {
				m.EXPECT().Resume(gomock.Any(), gomock.Any()).
					Return(live, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSessioner := NewMockSessioner(ctrl)
			tt.mockSetup(mockSessioner)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				s, ok := session.FromContext(r.Context())
				assert.True(t, ok)
				assert.Same(t, live, s)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockSessioner)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}
