package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
	"github.com/sbilibin2017/gw-games-journal/internal/services"
	"github.com/sbilibin2017/gw-games-journal/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	avatar := "https://example.com/a.png"
	relAvatar := "avatars/a.png"
	alice := &models.User{ID: 3, Username: "alice", Email: "alice@example.com", Avatar: &avatar}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"username":"alice","email":"alice@example.com","avatar":"https://example.com/a.png"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					RegisterUser(gomock.Any(), models.Credentials{Username: "alice", Email: "alice@example.com", Avatar: &avatar}).
					Return(alice, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":3,"username":"alice","email":"alice@example.com","avatar":"https://example.com/a.png"}`,
		},
		{
			name: "username taken",
			body: `{"username":"playerone","email":"p@example.com"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					RegisterUser(gomock.Any(), models.Credentials{Username: "playerone", Email: "p@example.com"}).
					Return(nil, services.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Username already taken."}`,
		},
		{
			name: "email taken",
			body: `{"username":"fresh","email":"player1@example.com"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					RegisterUser(gomock.Any(), models.Credentials{Username: "fresh", Email: "player1@example.com"}).
					Return(nil, services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Email already registered."}`,
		},
		{
			name: "relative avatar",
			body: `{"username":"carol","email":"carol@example.com","avatar":"avatars/a.png"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					RegisterUser(gomock.Any(), models.Credentials{Username: "carol", Email: "carol@example.com", Avatar: &relAvatar}).
					Return(&models.User{ID: 4, Username: "carol", Email: "carol@example.com", Avatar: &relAvatar}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":4,"username":"carol","email":"carol@example.com","avatar":"avatars/a.png"}`,
		},
		{
			name: "internal server error",
			body: `{"username":"bob","email":"bob@example.com"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "missing email",
			body:         `{"username":"bob"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"errors":{"email":"email is required"}}`,
		},
		{
			name:         "bad email",
			body:         `{"username":"bob","email":"nope"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"errors":{"email":"email must be a valid email"}}`,
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewRegisterHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	player := &models.User{ID: 1, Username: "playerone", Email: "player1@example.com"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(l *MockLoginer, s *MockSessionStarter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"username":"playerone"}`,
			mockSetup: func(l *MockLoginer, s *MockSessionStarter) {
				l.EXPECT().LoginWithUsername(gomock.Any(), "playerone").Return(player, nil)
				s.EXPECT().Start(gomock.Any(), *player).Return(&session.Session{Token: "tok", TokenID: "tid", User: *player}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"token":"tok","user":{"id":1,"username":"playerone","email":"player1@example.com","avatar":null}}`,
		},
		{
			name: "unknown username",
			body: `{"username":"ghost"}`,
			mockSetup: func(l *MockLoginer, s *MockSessionStarter) {
				l.EXPECT().LoginWithUsername(gomock.Any(), "ghost").Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"User not found"}`,
		},
		{
			name: "lookup error",
			body: `{"username":"playerone"}`,
			mockSetup: func(l *MockLoginer, s *MockSessionStarter) {
				l.EXPECT().LoginWithUsername(gomock.Any(), "playerone").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name: "session error",
			body: `{"username":"playerone"}`,
			mockSetup: func(l *MockLoginer, s *MockSessionStarter) {
				l.EXPECT().LoginWithUsername(gomock.Any(), "playerone").Return(player, nil)
				s.EXPECT().Start(gomock.Any(), *player).Return(nil, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "missing username",
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"errors":{"username":"username is required"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loginer := NewMockLoginer(ctrl)
			starter := NewMockSessionStarter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(loginer, starter)
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewLoginHandler(loginer, starter)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func withSession(req *http.Request, s *session.Session) *http.Request {
	return req.WithContext(session.WithContext(req.Context(), s))
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := &session.Session{Token: "tok", TokenID: "tid", User: models.User{ID: 1}}
	ender := NewMockSessionEnder(ctrl)

	ender.EXPECT().End(gomock.Any(), s).Return(nil)
	rr := httptest.NewRecorder()
	NewLogoutHandler(ender)(rr, withSession(httptest.NewRequest(http.MethodPost, "/logout", nil), s))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	ender.EXPECT().End(gomock.Any(), s).Return(errors.New("redis down"))
	rr = httptest.NewRecorder()
	NewLogoutHandler(ender)(rr, withSession(httptest.NewRequest(http.MethodPost, "/logout", nil), s))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = httptest.NewRecorder()
	NewLogoutHandler(ender)(rr, httptest.NewRequest(http.MethodPost, "/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMeHandler(t *testing.T) {
	s := &session.Session{Token: "tok", User: models.User{ID: 1, Username: "playerone", Email: "player1@example.com"}}

	rr := httptest.NewRecorder()
	NewMeHandler()(rr, withSession(httptest.NewRequest(http.MethodGet, "/me", nil), s))
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, s.User, got)

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil).WithContext(context.Background())
	NewMeHandler()(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
