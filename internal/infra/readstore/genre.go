package readstore

import (
	"context"

	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GenreReadStore struct {
	db db.DBTX
}

func NewGenreReadStore(db db.DBTX) *GenreReadStore {
	return &GenreReadStore{db: db}
}

func (r *GenreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GenreView, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id)

	var v queries.GenreView
	if err := row.Scan(&v.ID, &v.Name); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("genre not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find genre by ID", err)
	}
	return &v, nil
}

func (r *GenreReadStore) FindAll(ctx context.Context) ([]*queries.GenreView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM genres ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list genres", err)
	}
	defer rows.Close()

	var result []*queries.GenreView
	for rows.Next() {
		var v queries.GenreView
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan genre row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate genres", err)
	}
	return result, nil
}
