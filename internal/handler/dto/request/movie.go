package request

import (
	"movie-rental-api/internal/domain/movie"

	"github.com/google/uuid"
)

type CreateMovieRequest struct {
	Title          string    `json:"title" binding:"required,min=5,max=255"`
	GenreID        uuid.UUID `json:"genre_id" binding:"required"`
	NumberInStock  int32     `json:"number_in_stock" binding:"min=0"`
	DailyRateCents int64     `json:"daily_rate_cents" binding:"min=0"`
}

func (r CreateMovieRequest) ToDomain() (*movie.Movie, error) {
	return movie.NewMovie(r.Title, r.GenreID, r.NumberInStock, r.DailyRateCents)
}

type UpdateMovieRequest struct {
	Title          string    `json:"title" binding:"required,min=5,max=255"`
	GenreID        uuid.UUID `json:"genre_id" binding:"required"`
	NumberInStock  int32     `json:"number_in_stock" binding:"min=0"`
	DailyRateCents int64     `json:"daily_rate_cents" binding:"min=0"`
}
