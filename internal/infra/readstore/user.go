package readstore

import (
	"context"

	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

// FindByEmail also returns the stored hash so the login flow can verify the
// password without a second round trip.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const q = `
		SELECT id, name, email, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var v queries.AuthorizedUserView
	var hash string
	err := r.db.QueryRow(ctx, q, email).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive, &hash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `
		SELECT id, name, email, role, is_active
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}
