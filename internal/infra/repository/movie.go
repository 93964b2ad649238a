package repository

import (
	"context"

	"movie-rental-api/internal/domain/movie"
	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type movieRepository struct{}

func NewMovieRepository() shared.MovieRepository {
	return &movieRepository{}
}

func (r *movieRepository) Create(ctx context.Context, tx db.DBTX, m *movie.Movie) (uuid.UUID, error) {
	const q = `
		INSERT INTO movies (id, title, genre_id, number_in_stock, daily_rate_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q, m.ID(), m.Title(), m.GenreID(), m.NumberInStock(), m.DailyRateCents()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create movie", err)
	}
	return id, nil
}

func (r *movieRepository) Update(ctx context.Context, tx db.DBTX, m *movie.Movie) (int64, error) {
	const q = `
		UPDATE movies
		SET title = $2, genre_id = $3, number_in_stock = $4, daily_rate_cents = $5, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, m.ID(), m.Title(), m.GenreID(), m.NumberInStock(), m.DailyRateCents())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update movie", err)
	}
	return tag.RowsAffected(), nil
}

func (r *movieRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete movie", err)
	}
	return tag.RowsAffected(), nil
}

// DecrementStock relies on the conditional WHERE clause rather than a prior
// read, so two concurrent checkouts can never drive the stock below zero.
func (r *movieRepository) DecrementStock(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	const q = `
		UPDATE movies
		SET number_in_stock = number_in_stock - 1, updated_at = now()
		WHERE id = $1 AND number_in_stock > 0`

	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to decrement movie stock", err)
	}
	return tag.RowsAffected(), nil
}

func (r *movieRepository) IncrementStock(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const q = `
		UPDATE movies
		SET number_in_stock = number_in_stock + 1, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment movie stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("movie not found for restock", nil, infra.KindNotFound)
	}
	return nil
}
