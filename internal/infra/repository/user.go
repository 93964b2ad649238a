package repository

import (
	"context"

	"movie-rental-api/internal/domain/user"
	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type userRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q, u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	const q = `
		UPDATE users
		SET last_login = now(), updated_at = now()
		WHERE id = $1`

	if _, err := tx.Exec(ctx, q, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
