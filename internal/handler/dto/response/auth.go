package response

import (
	"movie-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromAuthorizedUserView(rm *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:    rm.ID,
		Name:  rm.Name,
		Email: rm.Email,
		Role:  rm.Role,
	}
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}
