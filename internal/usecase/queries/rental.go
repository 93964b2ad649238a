package queries

import (
	"context"

	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRentalNotFound = errs.New("rental not found")

type RentalQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	List(ctx context.Context) ([]*RentalView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*RentalView, error)
}

type RentalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	FindAll(ctx context.Context) ([]*RentalView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*RentalView, error)
}

type rentalQueriesImpl struct {
	readStore RentalReadStore
}

func NewRentalQueries(readStore RentalReadStore) RentalQueries {
	return &rentalQueriesImpl{readStore: readStore}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *rentalQueriesImpl) List(ctx context.Context) ([]*RentalView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *rentalQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*RentalView, error) {
	return q.readStore.FindByCustomerID(ctx, customerID)
}
