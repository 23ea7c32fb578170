package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-games-journal/internal/models"
	"github.com/sbilibin2017/gw-games-journal/internal/repositories"
	"github.com/sbilibin2017/gw-games-journal/internal/services"
	"github.com/sbilibin2017/gw-games-journal/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type journal struct {
	db      *sqlx.DB
	users   *services.UserService
	games   *services.GameService
	reviews *services.ReviewService
}

func newJournal(t *testing.T) journal {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.Initialize(ctx, db))

	userReader := repositories.NewUserReadRepository(db)
	gameReader := repositories.NewGameReadRepository(db)
	reviewReader := repositories.NewReviewReadRepository(db)

	games := services.NewGameService(gameReader, reviewReader)
	return journal{
		db:      db,
		users:   services.NewUserService(userReader, repositories.NewUserWriteRepository(db)),
		games:   games,
		reviews: services.NewReviewService(reviewReader, repositories.NewReviewWriteRepository(db), games, nil),
	}
}

func (j journal) count(t *testing.T, table string) int {
	t.Helper()

	var n int
	require.NoError(t, j.db.Get(&n, `SELECT COUNT(*) FROM `+table))
	return n
}

func (j journal) gameByTitle(t *testing.T, title string) models.Game {
	t.Helper()

	games, err := j.games.SearchGamesByQuery(context.Background(), title)
	require.NoError(t, err)
	require.Len(t, games, 1)
	return games[0]
}

func TestJournal_RegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	j := newJournal(t)

	user, err := j.users.RegisterUser(ctx, models.Credentials{Username: "newbie", Email: "new@example.com"})
	require.NoError(t, err)
	assert.Nil(t, user.Avatar)

	_, err = j.users.RegisterUser(ctx, models.Credentials{Username: "newbie", Email: "other@example.com"})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	assert.Equal(t, 3, j.count(t, "users"))

	found, err := j.users.LoginWithUsername(ctx, "newbie")
	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestJournal_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	j := newJournal(t)

	user, err := j.users.RegisterUser(ctx, models.Credentials{Username: "fresh", Email: "player1@example.com"})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	assert.True(t, services.IsValidationError(err))
	assert.Nil(t, user)
	assert.Equal(t, 2, j.count(t, "users"))
}

func TestJournal_RegisterRacingInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	j := newJournal(t)

	// The reader misses the row another request has already stored.
	reader := services.NewMockUserReader(ctrl)
	reader.EXPECT().GetByUsername(ctx, "playerone").Return(nil, nil)

	svc := services.NewUserService(reader, repositories.NewUserWriteRepository(j.db))
	user, err := svc.RegisterUser(ctx, models.Credentials{Username: "playerone", Email: "dup@example.com"})

	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	assert.Nil(t, user)
	assert.Equal(t, 2, j.count(t, "users"))
}

func TestJournal_LoginUnknownUser(t *testing.T) {
	j := newJournal(t)

	user, err := j.users.LoginWithUsername(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestJournal_RejectedRatingsLeaveStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	j := newJournal(t)

	player, err := j.users.LoginWithUsername(ctx, "playerone")
	require.NoError(t, err)
	hades := j.gameByTitle(t, "Hades")

	before := j.count(t, "reviews")
	for _, rating := range []int{0, 6} {
		_, err := j.reviews.CreateReviewEntry(ctx, models.CreateReviewInput{
			UserID: player.ID, GameID: hades.ID, Rating: rating, Comment: "nope",
		})
		assert.ErrorIs(t, err, services.ErrInvalidRating)
	}
	assert.Equal(t, before, j.count(t, "reviews"))
}

func TestJournal_UnknownGameRejectedByStore(t *testing.T) {
	ctx := context.Background()
	j := newJournal(t)

	player, err := j.users.LoginWithUsername(ctx, "playerone")
	require.NoError(t, err)

	_, err = j.reviews.CreateReviewEntry(ctx, models.CreateReviewInput{
		UserID: player.ID, GameID: 999, Rating: 3, Comment: "ghost",
	})
	assert.True(t, storage.IsForeignKeyViolation(err))
}

func TestJournal_GameDetailsAggregate(t *testing.T) {
	ctx := context.Background()
	j := newJournal(t)

	zelda := j.gameByTitle(t, "Zelda")
	details, err := j.games.GetGameDetails(ctx, zelda.ID)
	require.NoError(t, err)
	assert.Nil(t, details.AverageRating)
	assert.Equal(t, 0, details.ReviewCount)
	assert.Empty(t, details.Reviews)

	missing, err := j.games.GetGameDetails(ctx, 999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestJournal_NewReviewUpdatesAggregate(t *testing.T) {
	ctx := context.Background()
	j := newJournal(t)

	player, err := j.users.LoginWithUsername(ctx, "playerone")
	require.NoError(t, err)
	hades := j.gameByTitle(t, "Hades")

	before, err := j.reviews.GetGameDetailsWithReviews(ctx, hades.ID)
	require.NoError(t, err)
	require.Equal(t, 1, before.ReviewCount)
	require.NotNil(t, before.AverageRating)
	assert.InDelta(t, 4.0, *before.AverageRating, 1e-9)

	review, err := j.reviews.CreateReviewEntry(ctx, models.CreateReviewInput{
		UserID: player.ID, GameID: hades.ID, Rating: 5, Comment: "  One more run.  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "One more run.", review.Comment)

	after, err := j.reviews.GetGameDetailsWithReviews(ctx, hades.ID)
	require.NoError(t, err)
	assert.Equal(t, before.ReviewCount+1, after.ReviewCount)
	require.NotNil(t, after.AverageRating)
	assert.InDelta(t, 4.5, *after.AverageRating, 1e-9)
	require.Len(t, after.Reviews, 2)
	assert.Equal(t, review.ID, after.Reviews[0].Review.ID)

	recent, err := j.reviews.ListRecentReviews(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, review.ID, recent[0].Review.ID)
	assert.Equal(t, "playerone", recent[0].User.Username)

	mine, err := j.reviews.ListReviewsByUser(ctx, player.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, review.ID, mine[0].Review.ID)
}

func TestJournal_Search(t *testing.T) {
	ctx := context.Background()
	j := newJournal(t)

	all, err := j.games.ListGames(ctx)
	require.NoError(t, err)

	blank, err := j.games.SearchGamesByQuery(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, all, blank)

	rpg, err := j.games.SearchGamesByQuery(ctx, "rpg")
	require.NoError(t, err)
	require.Len(t, rpg, 1)
	assert.Equal(t, "Elden Ring", rpg[0].Title)

	none, err := j.games.SearchGamesByQuery(ctx, "100%")
	require.NoError(t, err)
	assert.Empty(t, none)
}
