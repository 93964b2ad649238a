package commands

import (
	"context"

	"movie-rental-api/internal/domain/customer"
	reqdto "movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/pkg/errs"
	"movie-rental-api/internal/usecase/queries"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound   = errs.New("customer not found")
	ErrCustomerValidation = errs.New("customer validation failed")
)

type CustomerCommands interface {
	Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	uow             shared.UnitOfWork
	customerQueries queries.CustomerQueries
}

func NewCustomerCommands(uow shared.UnitOfWork, customerQueries queries.CustomerQueries) CustomerCommands {
	return &customerCommandsImpl{
		uow:             uow,
		customerQueries: customerQueries,
	}
}

func (c *customerCommandsImpl) Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrCustomerValidation)
	}

	var customerID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Customers().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		customerID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.customerQueries.GetByID(ctx, customerID)
}

func (c *customerCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().CustomerByID(ctx, id)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		entity := customer.Reconstruct(snap.ID, snap.Name, snap.Phone, snap.IsGold)
		if updateErr := entity.Update(req.Name, req.Phone, req.IsGold); updateErr != nil {
			return errs.Mark(updateErr, ErrCustomerValidation)
		}

		affected, updateErr := tx.Customers().Update(ctx, tx.DB(), entity)
		if updateErr != nil {
			return errs.Mark(updateErr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrCustomerNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.customerQueries.GetByID(ctx, id)
}

func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Customers().Delete(ctx, tx.DB(), id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrCustomerNotFound
		}
		return nil
	})
}
