package commands

import (
	"context"

	"movie-rental-api/internal/domain/genre"
	reqdto "movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/pkg/errs"
	"movie-rental-api/internal/usecase/queries"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrGenreNotFound   = errs.New("genre not found")
	ErrGenreInUse      = errs.New("genre is referenced by movies")
	ErrGenreValidation = errs.New("genre validation failed")
)

type GenreCommands interface {
	Create(ctx context.Context, req reqdto.CreateGenreRequest) (*queries.GenreView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateGenreRequest) (*queries.GenreView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type genreCommandsImpl struct {
	uow          shared.UnitOfWork
	genreQueries queries.GenreQueries
}

func NewGenreCommands(uow shared.UnitOfWork, genreQueries queries.GenreQueries) GenreCommands {
	return &genreCommandsImpl{
		uow:          uow,
		genreQueries: genreQueries,
	}
}

func (g *genreCommandsImpl) Create(ctx context.Context, req reqdto.CreateGenreRequest) (*queries.GenreView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrGenreValidation)
	}

	var genreID uuid.UUID
	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Genres().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		genreID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return g.genreQueries.GetByID(ctx, genreID)
}

func (g *genreCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateGenreRequest) (*queries.GenreView, error) {
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().GenreByID(ctx, id)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrGenreNotFound
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		entity := genre.Reconstruct(snap.ID, snap.Name)
		if renameErr := entity.Rename(req.Name); renameErr != nil {
			return errs.Mark(renameErr, ErrGenreValidation)
		}

		affected, updateErr := tx.Genres().Update(ctx, tx.DB(), entity)
		if updateErr != nil {
			return errs.Mark(updateErr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrGenreNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return g.genreQueries.GetByID(ctx, id)
}

func (g *genreCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Genres().Delete(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrGenreInUse
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrGenreNotFound
		}
		return nil
	})
}
