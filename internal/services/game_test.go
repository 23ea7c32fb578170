package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
	"github.com/sbilibin2017/gw-games-journal/internal/services"
	"github.com/stretchr/testify/assert"
)

var (
	eldenRing = models.Game{ID: 2, Title: "Elden Ring", Platform: "PC", Genre: "Action RPG"}
	hades     = models.Game{ID: 3, Title: "Hades", Platform: "PC", Genre: "Roguelike"}
)

func TestGameService_SearchGamesByQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	games := services.NewMockGameReader(ctrl)
	svc := services.NewGameService(games, services.NewMockGameReviewReader(ctrl))
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		setup func()
		want  []models.Game
	}{
		{
			name:  "empty query lists all",
			query: "",
			setup: func() {
				games.EXPECT().List(ctx).Return([]models.Game{eldenRing, hades}, nil)
			},
			want: []models.Game{eldenRing, hades},
		},
		{
			name:  "whitespace query lists all",
			query: " \t ",
			setup: func() {
				games.EXPECT().List(ctx).Return([]models.Game{eldenRing, hades}, nil)
			},
			want: []models.Game{eldenRing, hades},
		},
		{
			name:  "query delegates to search",
			query: "RPG",
			setup: func() {
				games.EXPECT().Search(ctx, "RPG").Return([]models.Game{eldenRing}, nil)
			},
			want: []models.Game{eldenRing},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			got, err := svc.SearchGamesByQuery(ctx, tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("search error", func(t *testing.T) {
		games.EXPECT().Search(ctx, "x").Return(nil, errors.New("db error"))
		got, err := svc.SearchGamesByQuery(ctx, "x")
		assert.EqualError(t, err, "db error")
		assert.Nil(t, got)
	})
}

func TestGameService_GetGameDetails(t *testing.T) {
	ctx := context.Background()
	avg := 4.5
	reviews := []models.ReviewDetail{
		{Review: models.Review{ID: 10, GameID: hades.ID, Rating: 5}, Game: hades},
		{Review: models.Review{ID: 9, GameID: hades.ID, Rating: 4}, Game: hades},
	}

	tests := []struct {
		name    string
		id      int64
		setup   func(games *services.MockGameReader, rv *services.MockGameReviewReader)
		want    *models.GameDetails
		wantErr string
	}{
		{
			name: "game with reviews",
			id:   hades.ID,
			setup: func(games *services.MockGameReader, rv *services.MockGameReviewReader) {
				games.EXPECT().GetByID(ctx, hades.ID).Return(&hades, nil)
				rv.EXPECT().ListByGameID(ctx, hades.ID).Return(reviews, nil)
				rv.EXPECT().GetAggregateByGameID(ctx, hades.ID).Return(models.RatingAggregate{AverageRating: &avg, ReviewCount: 2}, nil)
			},
			want: &models.GameDetails{Game: hades, Reviews: reviews, AverageRating: &avg, ReviewCount: 2},
		},
		{
			name: "game without reviews",
			id:   eldenRing.ID,
			setup: func(games *services.MockGameReader, rv *services.MockGameReviewReader) {
				games.EXPECT().GetByID(ctx, eldenRing.ID).Return(&eldenRing, nil)
				rv.EXPECT().ListByGameID(ctx, eldenRing.ID).Return([]models.ReviewDetail{}, nil)
				rv.EXPECT().GetAggregateByGameID(ctx, eldenRing.ID).Return(models.RatingAggregate{}, nil)
			},
			want: &models.GameDetails{Game: eldenRing, Reviews: []models.ReviewDetail{}},
		},
		{
			name: "missing game is absent, not an error",
			id:   99,
			setup: func(games *services.MockGameReader, rv *services.MockGameReviewReader) {
				games.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)
			},
			want: nil,
		},
		{
			name: "aggregate error",
			id:   hades.ID,
			setup: func(games *services.MockGameReader, rv *services.MockGameReviewReader) {
				games.EXPECT().GetByID(ctx, hades.ID).Return(&hades, nil)
				rv.EXPECT().ListByGameID(ctx, hades.ID).Return(reviews, nil)
				rv.EXPECT().GetAggregateByGameID(ctx, hades.ID).Return(models.RatingAggregate{}, errors.New("aggregate failed"))
			},
			wantErr: "aggregate failed",
		},
		{
			name: "reviews error",
			id:   hades.ID,
			setup: func(games *services.MockGameReader, rv *services.MockGameReviewReader) {
				games.EXPECT().GetByID(ctx, hades.ID).Return(&hades, nil)
				rv.EXPECT().ListByGameID(ctx, hades.ID).Return(nil, errors.New("list failed"))
			},
			wantErr: "list failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			games := services.NewMockGameReader(ctrl)
			rv := services.NewMockGameReviewReader(ctrl)
			tt.setup(games, rv)

			got, err := services.NewGameService(games, rv).GetGameDetails(ctx, tt.id)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
