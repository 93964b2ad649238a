package repository

import (
	"context"
	"time"

	"movie-rental-api/internal/domain/rental"
	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type rentalRepository struct{}

func NewRentalRepository() shared.RentalRepository {
	return &rentalRepository{}
}

func (r *rentalRepository) Create(ctx context.Context, tx db.DBTX, rt *rental.Rental) (uuid.UUID, error) {
	const q = `
		INSERT INTO rentals (
			id, customer_id, customer_name, customer_phone, customer_is_gold,
			movie_id, movie_title, movie_daily_rate_cents, date_out
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	c := rt.Customer()
	m := rt.Movie()

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		rt.ID(), c.ID, c.Name, c.Phone, c.IsGold,
		m.ID, m.Title, m.DailyRateCents, rt.DateOut(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create rental", err)
	}
	return id, nil
}

// Close is a no-op on rentals that are already returned; callers decide what
// zero affected rows means.
func (r *rentalRepository) Close(ctx context.Context, tx db.DBTX, id uuid.UUID, returnedAt time.Time, feeCents int64) (int64, error) {
	const q = `
		UPDATE rentals
		SET date_returned = $2, rental_fee_cents = $3
		WHERE id = $1 AND date_returned IS NULL`

	tag, err := tx.Exec(ctx, q, id, returnedAt, feeCents)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to close rental", err)
	}
	return tag.RowsAffected(), nil
}
