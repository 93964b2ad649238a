package readstore

import (
	"context"

	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(db db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, phone, is_gold FROM customers WHERE id = $1`, id)

	var v queries.CustomerView
	if err := row.Scan(&v.ID, &v.Name, &v.Phone, &v.IsGold); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return &v, nil
}

func (r *CustomerReadStore) FindAll(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, phone, is_gold FROM customers ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var result []*queries.CustomerView
	for rows.Next() {
		var v queries.CustomerView
		if err := rows.Scan(&v.ID, &v.Name, &v.Phone, &v.IsGold); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customers", err)
	}
	return result, nil
}
