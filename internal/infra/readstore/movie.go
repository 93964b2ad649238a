package readstore

import (
	"context"

	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const movieColumns = `
	m.id, m.title, m.genre_id, g.name AS genre_name,
	m.number_in_stock, m.daily_rate_cents, m.created_at, m.updated_at`

type MovieReadStore struct {
	db db.DBTX
}

func NewMovieReadStore(db db.DBTX) *MovieReadStore {
	return &MovieReadStore{db: db}
}

func (r *MovieReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MovieView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+movieColumns+` FROM movies m JOIN genres g ON g.id = m.genre_id WHERE m.id = $1`, id)

	view, err := scanMovieView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("movie not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find movie by ID", err)
	}
	return view, nil
}

func (r *MovieReadStore) FindAll(ctx context.Context) ([]*queries.MovieView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+movieColumns+` FROM movies m JOIN genres g ON g.id = m.genre_id ORDER BY m.title`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list movies", err)
	}
	defer rows.Close()

	var result []*queries.MovieView
	for rows.Next() {
		view, err := scanMovieView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan movie row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate movies", err)
	}
	return result, nil
}

func scanMovieView(row pgx.Row) (*queries.MovieView, error) {
	var v queries.MovieView
	err := row.Scan(
		&v.ID, &v.Title, &v.GenreID, &v.GenreName,
		&v.NumberInStock, &v.DailyRateCents, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
