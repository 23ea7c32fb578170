package handlers

//go:generate mockgen -source=game.go -destination=game_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-games-journal/internal/models"
)

// GameSearcher lists or filters the catalogue.
type GameSearcher interface {
	SearchGamesByQuery(ctx context.Context, query string) ([]models.Game, error)
}

// GameDetailer loads a game with its reviews and rating.
type GameDetailer interface {
	GetGameDetailsWithReviews(ctx context.Context, gameID int64) (*models.GameDetails, error)
}

// NewListGamesHandler returns all games, or those matching q.
// @Summary List games
// @Description Blank q returns the whole catalogue; otherwise title, platform and genre are searched.
// @Tags games
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} models.Game
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /games [get]
func NewListGamesHandler(svc GameSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := svc.SearchGamesByQuery(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, games)
	}
}

// NewGetGameHandler returns one game with reviews and rating.
// @Summary Game details
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.GameDetails
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Game not found"
// @Router /games/{id} [get]
func NewGetGameHandler(svc GameDetailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}

		details, err := svc.GetGameDetailsWithReviews(r.Context(), id)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if details == nil {
			writeError(w, http.StatusNotFound, "Game not found")
			return
		}
		writeJSON(w, http.StatusOK, details)
	}
}
