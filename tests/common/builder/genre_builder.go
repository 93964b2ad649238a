//go:build unit || e2e

package builder

import (
	"movie-rental-api/internal/domain/genre"
	reqdto "movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GenreBuilder struct {
	ID   uuid.UUID
	Name string
}

func NewGenreBuilder() *GenreBuilder {
	return &GenreBuilder{
		ID:   uuid.New(),
		Name: "Action",
	}
}

func (g *GenreBuilder) With(mutate func(*GenreBuilder)) *GenreBuilder {
	mutate(g)
	return g
}

// Build methods
func (g *GenreBuilder) BuildDomain() (*genre.Genre, error) {
	return genre.NewGenre(g.Name)
}

func (g *GenreBuilder) BuildCreateRequestDTO() reqdto.CreateGenreRequest {
	return reqdto.CreateGenreRequest{Name: g.Name}
}

func (g *GenreBuilder) BuildUpdateRequestDTO() reqdto.UpdateGenreRequest {
	return reqdto.UpdateGenreRequest{Name: g.Name}
}

func (g *GenreBuilder) BuildView() *queries.GenreView {
	return &queries.GenreView{
		ID:   g.ID,
		Name: g.Name,
	}
}

// Fluent builder methods
func (g *GenreBuilder) WithID(id uuid.UUID) *GenreBuilder {
	g.ID = id
	return g
}

func (g *GenreBuilder) WithName(name string) *GenreBuilder {
	g.Name = name
	return g
}
