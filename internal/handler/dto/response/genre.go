package response

import (
	"movie-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GenreResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromGenreView(rm *queries.GenreView) *GenreResponse {
	return &GenreResponse{
		ID:   rm.ID,
		Name: rm.Name,
	}
}

func FromGenreViews(rms []*queries.GenreView) []*GenreResponse {
	result := make([]*GenreResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromGenreView(rm)
	}
	return result
}
