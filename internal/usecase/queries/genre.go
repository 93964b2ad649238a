package queries

import (
	"context"

	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrGenreNotFound = errs.New("genre not found")

type GenreQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*GenreView, error)
	List(ctx context.Context) ([]*GenreView, error)
}

type GenreReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GenreView, error)
	FindAll(ctx context.Context) ([]*GenreView, error)
}

type genreQueriesImpl struct {
	readStore GenreReadStore
}

func NewGenreQueries(readStore GenreReadStore) GenreQueries {
	return &genreQueriesImpl{readStore: readStore}
}

func (q *genreQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GenreView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *genreQueriesImpl) List(ctx context.Context) ([]*GenreView, error) {
	return q.readStore.FindAll(ctx)
}
