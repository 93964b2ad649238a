//go:build unit || e2e

package builder

import (
	"time"

	"movie-rental-api/internal/domain/movie"
	reqdto "movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/usecase/queries"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type MovieBuilder struct {
	ID             uuid.UUID
	Title          string
	GenreID        uuid.UUID
	GenreName      string
	NumberInStock  int32
	DailyRateCents int64
}

func NewMovieBuilder() *MovieBuilder {
	return &MovieBuilder{
		ID:             uuid.New(),
		Title:          "The Terminator",
		GenreID:        uuid.New(),
		GenreName:      "Action",
		NumberInStock:  5,
		DailyRateCents: 250,
	}
}

func (m *MovieBuilder) With(mutate func(*MovieBuilder)) *MovieBuilder {
	mutate(m)
	return m
}

// Build methods
func (m *MovieBuilder) BuildDomain() (*movie.Movie, error) {
	return movie.NewMovie(m.Title, m.GenreID, m.NumberInStock, m.DailyRateCents)
}

func (m *MovieBuilder) BuildCreateRequestDTO() reqdto.CreateMovieRequest {
	return reqdto.CreateMovieRequest{
		Title:          m.Title,
		GenreID:        m.GenreID,
		NumberInStock:  m.NumberInStock,
		DailyRateCents: m.DailyRateCents,
	}
}

func (m *MovieBuilder) BuildUpdateRequestDTO() reqdto.UpdateMovieRequest {
	return reqdto.UpdateMovieRequest{
		Title:          m.Title,
		GenreID:        m.GenreID,
		NumberInStock:  m.NumberInStock,
		DailyRateCents: m.DailyRateCents,
	}
}

func (m *MovieBuilder) BuildView() *queries.MovieView {
	now := time.Now()
	return &queries.MovieView{
		ID:             m.ID,
		Title:          m.Title,
		GenreID:        m.GenreID,
		GenreName:      m.GenreName,
		NumberInStock:  m.NumberInStock,
		DailyRateCents: m.DailyRateCents,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (m *MovieBuilder) BuildSnapshot() *shared.MovieSnapshot {
	return &shared.MovieSnapshot{
		ID:             m.ID,
		Title:          m.Title,
		GenreID:        m.GenreID,
		NumberInStock:  m.NumberInStock,
		DailyRateCents: m.DailyRateCents,
	}
}

// Fluent builder methods
func (m *MovieBuilder) WithID(id uuid.UUID) *MovieBuilder {
	m.ID = id
	return m
}

func (m *MovieBuilder) WithTitle(title string) *MovieBuilder {
	m.Title = title
	return m
}

func (m *MovieBuilder) WithGenreID(genreID uuid.UUID) *MovieBuilder {
	m.GenreID = genreID
	return m
}

func (m *MovieBuilder) WithStock(n int32) *MovieBuilder {
	m.NumberInStock = n
	return m
}

func (m *MovieBuilder) WithDailyRateCents(rate int64) *MovieBuilder {
	m.DailyRateCents = rate
	return m
}

func (m *MovieBuilder) AsOutOfStock() *MovieBuilder {
	m.NumberInStock = 0
	return m
}
