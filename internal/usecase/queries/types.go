package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RentalView struct {
	ID                  uuid.UUID  `json:"id"`
	CustomerID          uuid.UUID  `json:"customer_id"`
	CustomerName        string     `json:"customer_name"`
	CustomerPhone       string     `json:"customer_phone"`
	CustomerIsGold      bool       `json:"customer_is_gold"`
	MovieID             uuid.UUID  `json:"movie_id"`
	MovieTitle          string     `json:"movie_title"`
	MovieDailyRateCents int64      `json:"movie_daily_rate_cents"`
	DateOut             time.Time  `json:"date_out"`
	DateReturned        *time.Time `json:"date_returned,omitempty"`
	RentalFeeCents      *int64     `json:"rental_fee_cents,omitempty"`
	Status              string     `json:"status"`
}

type GenreView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MovieView struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	GenreID        uuid.UUID `json:"genre_id"`
	GenreName      string    `json:"genre_name"`
	NumberInStock  int32     `json:"number_in_stock"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CustomerView struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	IsGold bool      `json:"is_gold"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
