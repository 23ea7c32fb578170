package models

import "database/sql"

// MapUser converts a users row into a User.
func MapUser(row UserDB) User {
	return User{
		ID:       row.ID,
		Username: row.Username,
		Email:    row.Email,
		Avatar:   optional(row.Avatar),
	}
}

// MapGame converts a games row into a Game.
func MapGame(row GameDB) Game {
	return Game{
		ID:         row.ID,
		Title:      row.Title,
		Platform:   row.Platform,
		Genre:      row.Genre,
		CoverImage: optional(row.CoverImage),
	}
}

// MapReview converts a reviews row into a Review.
func MapReview(row ReviewDB) Review {
	return Review{
		ID:        row.ID,
		UserID:    row.UserID,
		GameID:    row.GameID,
		Rating:    row.Rating,
		Comment:   row.Comment,
		CreatedAt: row.CreatedAt,
	}
}

// MapReviewDetail splits a joined row into its review, user and game.
func MapReviewDetail(row ReviewDetailDB) ReviewDetail {
	return ReviewDetail{
		Review: MapReview(row.ReviewDB),
		User: MapUser(UserDB{
			ID:       row.UserID,
			Username: row.Username,
			Email:    row.Email,
			Avatar:   row.Avatar,
		}),
		Game: MapGame(GameDB{
			ID:         row.GameID,
			Title:      row.Title,
			Platform:   row.Platform,
			Genre:      row.Genre,
			CoverImage: row.CoverImage,
		}),
	}
}

// MapRatingAggregate converts an AVG/COUNT row. A NULL average becomes nil.
func MapRatingAggregate(row RatingAggregateDB) RatingAggregate {
	agg := RatingAggregate{ReviewCount: row.ReviewCount}
	if row.AverageRating.Valid {
		avg := row.AverageRating.Float64
		agg.AverageRating = &avg
	}
	return agg
}

func optional(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
