package request

import (
	"movie-rental-api/internal/domain/genre"
)

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,min=5,max=50"`
}

func (r CreateGenreRequest) ToDomain() (*genre.Genre, error) {
	return genre.NewGenre(r.Name)
}

type UpdateGenreRequest struct {
	Name string `json:"name" binding:"required,min=5,max=50"`
}
