package repository

import (
	"context"

	"movie-rental-api/internal/domain/genre"
	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type genreRepository struct{}

func NewGenreRepository() shared.GenreRepository {
	return &genreRepository{}
}

func (r *genreRepository) Create(ctx context.Context, tx db.DBTX, g *genre.Genre) (uuid.UUID, error) {
	const q = `
		INSERT INTO genres (id, name)
		VALUES ($1, $2)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q, g.ID(), g.Name()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create genre", err)
	}
	return id, nil
}

func (r *genreRepository) Update(ctx context.Context, tx db.DBTX, g *genre.Genre) (int64, error) {
	const q = `
		UPDATE genres
		SET name = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, g.ID(), g.Name())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update genre", err)
	}
	return tag.RowsAffected(), nil
}

func (r *genreRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete genre", err)
	}
	return tag.RowsAffected(), nil
}
