package response

import (
	"time"

	"movie-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type MovieResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	GenreID        uuid.UUID `json:"genreId"`
	GenreName      string    `json:"genreName"`
	NumberInStock  int32     `json:"numberInStock"`
	DailyRateCents int64     `json:"dailyRateCents"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromMovieView(rm *queries.MovieView) *MovieResponse {
	return &MovieResponse{
		ID:             rm.ID,
		Title:          rm.Title,
		GenreID:        rm.GenreID,
		GenreName:      rm.GenreName,
		NumberInStock:  rm.NumberInStock,
		DailyRateCents: rm.DailyRateCents,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}

func FromMovieViews(rms []*queries.MovieView) []*MovieResponse {
	result := make([]*MovieResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromMovieView(rm)
	}
	return result
}
