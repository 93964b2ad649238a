package commands

import (
	"context"

	"movie-rental-api/internal/domain/movie"
	reqdto "movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/pkg/errs"
	"movie-rental-api/internal/usecase/queries"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMovieNotFound   = errs.New("movie not found")
	ErrInvalidGenre    = errs.New("invalid genre")
	ErrMovieValidation = errs.New("movie validation failed")
)

type MovieCommands interface {
	Create(ctx context.Context, req reqdto.CreateMovieRequest) (*queries.MovieView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateMovieRequest) (*queries.MovieView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieCommandsImpl struct {
	uow          shared.UnitOfWork
	movieQueries queries.MovieQueries
}

func NewMovieCommands(uow shared.UnitOfWork, movieQueries queries.MovieQueries) MovieCommands {
	return &movieCommandsImpl{
		uow:          uow,
		movieQueries: movieQueries,
	}
}

func (m *movieCommandsImpl) Create(ctx context.Context, req reqdto.CreateMovieRequest) (*queries.MovieView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrMovieValidation)
	}

	var movieID uuid.UUID
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, readErr := tx.Reads().GenreByID(ctx, req.GenreID); readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrInvalidGenre
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		id, createErr := tx.Movies().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindForeignKeyViolated) {
				return ErrInvalidGenre
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		movieID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m.movieQueries.GetByID(ctx, movieID)
}

func (m *movieCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateMovieRequest) (*queries.MovieView, error) {
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().MovieByID(ctx, id)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrMovieNotFound
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		if _, genreErr := tx.Reads().GenreByID(ctx, req.GenreID); genreErr != nil {
			if infra.IsKind(genreErr, infra.KindNotFound) {
				return ErrInvalidGenre
			}
			return errs.Mark(genreErr, ErrDatabaseOperationFailed)
		}

		entity := movie.Reconstruct(snap.ID, snap.Title, snap.GenreID, snap.NumberInStock, snap.DailyRateCents)
		if updateErr := entity.Update(req.Title, req.GenreID, req.NumberInStock, req.DailyRateCents); updateErr != nil {
			return errs.Mark(updateErr, ErrMovieValidation)
		}

		affected, updateErr := tx.Movies().Update(ctx, tx.DB(), entity)
		if updateErr != nil {
			return errs.Mark(updateErr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrMovieNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m.movieQueries.GetByID(ctx, id)
}

func (m *movieCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Movies().Delete(ctx, tx.DB(), id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrMovieNotFound
		}
		return nil
	})
}
