package readstore

import (
	"context"

	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const rentalColumns = `
	id, customer_id, customer_name, customer_phone, customer_is_gold,
	movie_id, movie_title, movie_daily_rate_cents,
	date_out, date_returned, rental_fee_cents`

type RentalReadStore struct {
	db db.DBTX
}

func NewRentalReadStore(db db.DBTX) *RentalReadStore {
	return &RentalReadStore{db: db}
}

func (r *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id = $1`, id)

	view, err := scanRentalView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by ID", err)
	}
	return view, nil
}

// FindAll returns rentals newest first, mirroring the write order customers
// expect at the counter.
func (r *RentalReadStore) FindAll(ctx context.Context) ([]*queries.RentalView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+rentalColumns+` FROM rentals ORDER BY date_out DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals", err)
	}
	defer rows.Close()

	var result []*queries.RentalView
	for rows.Next() {
		view, err := scanRentalView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rentals", err)
	}
	return result, nil
}

func (r *RentalReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.RentalView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+rentalColumns+` FROM rentals WHERE customer_id = $1 ORDER BY date_out DESC`, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals by customer", err)
	}
	defer rows.Close()

	var result []*queries.RentalView
	for rows.Next() {
		view, err := scanRentalView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rentals", err)
	}
	return result, nil
}

func scanRentalView(row pgx.Row) (*queries.RentalView, error) {
	var v queries.RentalView
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.CustomerName, &v.CustomerPhone, &v.CustomerIsGold,
		&v.MovieID, &v.MovieTitle, &v.MovieDailyRateCents,
		&v.DateOut, &v.DateReturned, &v.RentalFeeCents,
	)
	if err != nil {
		return nil, err
	}
	if v.DateReturned != nil {
		v.Status = "returned"
	} else {
		v.Status = "active"
	}
	return &v, nil
}
