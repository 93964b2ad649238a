//go:build unit || e2e

package builder

import (
	"time"

	"movie-rental-api/internal/domain/rental"
	reqdto "movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/usecase/queries"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	ID                  uuid.UUID
	CustomerID          uuid.UUID
	CustomerName        string
	CustomerPhone       string
	CustomerIsGold      bool
	MovieID             uuid.UUID
	MovieTitle          string
	MovieDailyRateCents int64
	DateOut             time.Time
	DateReturned        *time.Time
	RentalFeeCents      *int64
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		ID:                  uuid.New(),
		CustomerID:          uuid.New(),
		CustomerName:        "Alice Johnson",
		CustomerPhone:       "555-0101",
		CustomerIsGold:      false,
		MovieID:             uuid.New(),
		MovieTitle:          "The Terminator",
		MovieDailyRateCents: 250,
		DateOut:             time.Now().Add(-48 * time.Hour),
	}
}

func (r *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RentalBuilder) BuildDomain() (*rental.Rental, error) {
	return rental.NewRental(
		rental.CustomerSnapshot{
			ID:     r.CustomerID,
			Name:   r.CustomerName,
			Phone:  r.CustomerPhone,
			IsGold: r.CustomerIsGold,
		},
		rental.MovieSnapshot{
			ID:             r.MovieID,
			Title:          r.MovieTitle,
			DailyRateCents: r.MovieDailyRateCents,
		},
		r.DateOut,
	)
}

func (r *RentalBuilder) BuildCheckOutDTO() reqdto.CheckOutRequest {
	return reqdto.CheckOutRequest{
		CustomerID: r.CustomerID,
		MovieID:    r.MovieID,
	}
}

func (r *RentalBuilder) BuildReturnDTO() reqdto.ReturnRequest {
	return reqdto.ReturnRequest{
		CustomerID: r.CustomerID,
		MovieID:    r.MovieID,
	}
}

func (r *RentalBuilder) BuildView() *queries.RentalView {
	status := "active"
	if r.DateReturned != nil {
		status = "returned"
	}
	return &queries.RentalView{
		ID:                  r.ID,
		CustomerID:          r.CustomerID,
		CustomerName:        r.CustomerName,
		CustomerPhone:       r.CustomerPhone,
		CustomerIsGold:      r.CustomerIsGold,
		MovieID:             r.MovieID,
		MovieTitle:          r.MovieTitle,
		MovieDailyRateCents: r.MovieDailyRateCents,
		DateOut:             r.DateOut,
		DateReturned:        r.DateReturned,
		RentalFeeCents:      r.RentalFeeCents,
		Status:              status,
	}
}

func (r *RentalBuilder) BuildSnapshot() *shared.RentalSnapshot {
	return &shared.RentalSnapshot{
		ID:                  r.ID,
		CustomerID:          r.CustomerID,
		MovieID:             r.MovieID,
		MovieDailyRateCents: r.MovieDailyRateCents,
		DateOut:             r.DateOut,
		DateReturned:        r.DateReturned,
		FeeCents:            r.RentalFeeCents,
	}
}

// Fluent builder methods
func (r *RentalBuilder) WithID(id uuid.UUID) *RentalBuilder {
	r.ID = id
	return r
}

func (r *RentalBuilder) WithCustomerID(customerID uuid.UUID) *RentalBuilder {
	r.CustomerID = customerID
	return r
}

func (r *RentalBuilder) WithMovieID(movieID uuid.UUID) *RentalBuilder {
	r.MovieID = movieID
	return r
}

func (r *RentalBuilder) WithDailyRateCents(rate int64) *RentalBuilder {
	r.MovieDailyRateCents = rate
	return r
}

func (r *RentalBuilder) WithDateOut(dateOut time.Time) *RentalBuilder {
	r.DateOut = dateOut
	return r
}

func (r *RentalBuilder) AsReturned(returnedAt time.Time, feeCents int64) *RentalBuilder {
	r.DateReturned = &returnedAt
	r.RentalFeeCents = &feeCents
	return r
}

func (r *RentalBuilder) ForPair(customerID, movieID uuid.UUID) *RentalBuilder {
	r.CustomerID = customerID
	r.MovieID = movieID
	return r
}
