package commands

import (
	"context"

	"movie-rental-api/internal/domain/rental"
	reqdto "movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/pkg/clock"
	"movie-rental-api/internal/pkg/errs"
	"movie-rental-api/internal/usecase/queries"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCustomer         = errs.New("invalid customer")
	ErrInvalidMovie            = errs.New("invalid movie")
	ErrMovieOutOfStock         = errs.New("movie out of stock")
	ErrRentalAlreadyOpen       = errs.New("rental already open for this customer and movie")
	ErrRentalNotFound          = errs.New("rental not found")
	ErrRentalAlreadyReturned   = errs.New("movie is already returned")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type RentalCommands interface {
	CheckOut(ctx context.Context, req reqdto.CheckOutRequest) (*queries.RentalView, error)
	Return(ctx context.Context, req reqdto.ReturnRequest) (*queries.RentalView, error)
}

type rentalCommandsImpl struct {
	uow           shared.UnitOfWork
	rentalQueries queries.RentalQueries
	clock         clock.Clock
}

func NewRentalCommands(uow shared.UnitOfWork, rentalQueries queries.RentalQueries, clock clock.Clock) RentalCommands {
	return &rentalCommandsImpl{
		uow:           uow,
		rentalQueries: rentalQueries,
		clock:         clock,
	}
}

// CheckOut opens a rental and takes one unit of stock in a single
// transaction. Either both happen or neither does.
func (r *rentalCommandsImpl) CheckOut(ctx context.Context, req reqdto.CheckOutRequest) (*queries.RentalView, error) {
	var rentalID uuid.UUID

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		customerSnap, err := tx.Reads().CustomerByID(ctx, req.CustomerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidCustomer
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		movieSnap, err := tx.Reads().MovieByID(ctx, req.MovieID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidMovie
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// The conditional decrement is the stock gate; under concurrency the
		// row update serializes competing checkouts.
		affected, err := tx.Movies().DecrementStock(ctx, tx.DB(), movieSnap.ID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrMovieOutOfStock
		}

		entity, err := rental.NewRental(
			rental.CustomerSnapshot{
				ID:     customerSnap.ID,
				Name:   customerSnap.Name,
				Phone:  customerSnap.Phone,
				IsGold: customerSnap.IsGold,
			},
			rental.MovieSnapshot{
				ID:             movieSnap.ID,
				Title:          movieSnap.Title,
				DailyRateCents: movieSnap.DailyRateCents,
			},
			r.clock.Now(),
		)
		if err != nil {
			return err
		}

		rentalID, err = tx.Rentals().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrRentalAlreadyOpen
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.rentalQueries.GetByID(ctx, rentalID)
}

// Return closes the latest rental for the pair, charges the fee, and puts the
// unit back on the shelf.
func (r *rentalCommandsImpl) Return(ctx context.Context, req reqdto.ReturnRequest) (*queries.RentalView, error) {
	var rentalID uuid.UUID

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().LatestRentalForPair(ctx, req.CustomerID, req.MovieID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRentalNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if snap.DateReturned != nil {
			return ErrRentalAlreadyReturned
		}

		now := r.clock.Now()
		fee := rental.FeeCents(snap.MovieDailyRateCents, snap.DateOut, now)

		affected, err := tx.Rentals().Close(ctx, tx.DB(), snap.ID, now, fee)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			// Lost the race against a concurrent return of the same rental.
			return ErrRentalAlreadyReturned
		}

		if err := tx.Movies().IncrementStock(ctx, tx.DB(), snap.MovieID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		rentalID = snap.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.rentalQueries.GetByID(ctx, rentalID)
}
