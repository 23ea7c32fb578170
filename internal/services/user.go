package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-games-journal/internal/logger"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
	"github.com/sbilibin2017/gw-games-journal/internal/storage"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email string, avatar *string) (*models.User, error)
}

// UserService handles sign-up and username login.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// ListUsers returns all users ordered by username.
func (svc *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// GetUserByID returns the user with id, or nil when there is none.
func (svc *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", id, "err", err)
		return nil, err
	}
	return user, nil
}

// LoginWithUsername looks a user up by username. A nil user means the
// caller should offer sign-up; it is not an error.
func (svc *UserService) LoginWithUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown username", "username", username)
	}
	return user, nil
}

// RegisterUser creates a new user.
func (svc *UserService) RegisterUser(ctx context.Context, creds models.Credentials) (*models.User, error) {
	if creds.Username == "" || creds.Email == "" {
		return nil, ErrCredentialsRequired
	}

	existing, err := svc.reader.GetByUsername(ctx, creds.Username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("username already taken", "username", creds.Username)
		return nil, ErrUsernameTaken
	}

	user, err := svc.writer.Save(ctx, creds.Username, creds.Email, creds.Avatar)
	if err != nil {
		// A concurrent sign-up can pass the check above; the unique index decides.
		if storage.IsUniqueViolation(err, "users.username") {
			logger.Log.Infow("username taken during insert", "username", creds.Username)
			return nil, ErrUsernameTaken
		}
		if storage.IsUniqueViolation(err, "users.email") {
			logger.Log.Infow("email already registered", "email", creds.Email)
			return nil, ErrEmailTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}
