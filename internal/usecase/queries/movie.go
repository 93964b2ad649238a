package queries

import (
	"context"

	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMovieNotFound = errs.New("movie not found")

type MovieQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MovieView, error)
	List(ctx context.Context) ([]*MovieView, error)
}

type MovieReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MovieView, error)
	FindAll(ctx context.Context) ([]*MovieView, error)
}

type movieQueriesImpl struct {
	readStore MovieReadStore
}

func NewMovieQueries(readStore MovieReadStore) MovieQueries {
	return &movieQueriesImpl{readStore: readStore}
}

func (q *movieQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MovieView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *movieQueriesImpl) List(ctx context.Context) ([]*MovieView, error) {
	return q.readStore.FindAll(ctx)
}
