package services

//go:generate mockgen -source=game.go -destination=game_mock.go -package=services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-games-journal/internal/logger"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
)

// GameReader defines read operations on the game catalogue.
type GameReader interface {
	List(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, id int64) (*models.Game, error)
	Search(ctx context.Context, query string) ([]models.Game, error)
}

// GameReviewReader defines the review reads needed to describe a game.
type GameReviewReader interface {
	ListByGameID(ctx context.Context, gameID int64) ([]models.ReviewDetail, error)
	GetAggregateByGameID(ctx context.Context, gameID int64) (models.RatingAggregate, error)
}

// GameService answers catalogue questions.
type GameService struct {
	games   GameReader
	reviews GameReviewReader
}

// NewGameService creates a new GameService.
func NewGameService(games GameReader, reviews GameReviewReader) *GameService {
	return &GameService{games: games, reviews: reviews}
}

// ListGames returns all games ordered by title.
func (s *GameService) ListGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.games.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list games", "error", err)
		return nil, err
	}
	return games, nil
}

// SearchGamesByQuery filters games by title, platform or genre.
// A blank query returns the full list.
func (s *GameService) SearchGamesByQuery(ctx context.Context, query string) ([]models.Game, error) {
	if strings.TrimSpace(query) == "" {
		return s.ListGames(ctx)
	}

	games, err := s.games.Search(ctx, query)
	if err != nil {
		logger.Log.Errorw("failed to search games", "query", query, "error", err)
		return nil, err
	}
	return games, nil
}

// GetGameDetails returns a game with its reviews and rating aggregate,
// or nil when the game does not exist.
func (s *GameService) GetGameDetails(ctx context.Context, gameID int64) (*models.GameDetails, error) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		logger.Log.Errorw("failed to get game", "gameID", gameID, "error", err)
		return nil, err
	}
	if game == nil {
		return nil, nil
	}

	reviews, err := s.reviews.ListByGameID(ctx, gameID)
	if err != nil {
		logger.Log.Errorw("failed to list game reviews", "gameID", gameID, "error", err)
		return nil, err
	}

	agg, err := s.reviews.GetAggregateByGameID(ctx, gameID)
	if err != nil {
		logger.Log.Errorw("failed to aggregate game ratings", "gameID", gameID, "error", err)
		return nil, err
	}

	return &models.GameDetails{
		Game:          *game,
		Reviews:       reviews,
		AverageRating: agg.AverageRating,
		ReviewCount:   agg.ReviewCount,
	}, nil
}
