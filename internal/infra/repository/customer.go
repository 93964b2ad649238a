package repository

import (
	"context"

	"movie-rental-api/internal/domain/customer"
	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type customerRepository struct{}

func NewCustomerRepository() shared.CustomerRepository {
	return &customerRepository{}
}

func (r *customerRepository) Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	const q = `
		INSERT INTO customers (id, name, phone, is_gold)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q, c.ID(), c.Name(), c.Phone(), c.IsGold()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

func (r *customerRepository) Update(ctx context.Context, tx db.DBTX, c *customer.Customer) (int64, error) {
	const q = `
		UPDATE customers
		SET name = $2, phone = $3, is_gold = $4, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, c.ID(), c.Name(), c.Phone(), c.IsGold())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update customer", err)
	}
	return tag.RowsAffected(), nil
}

func (r *customerRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete customer", err)
	}
	return tag.RowsAffected(), nil
}
