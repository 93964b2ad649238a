package response

import (
	"time"

	"movie-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalCustomerResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	IsGold bool      `json:"isGold"`
}

type RentalMovieResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	DailyRateCents int64     `json:"dailyRateCents"`
}

type RentalResponse struct {
	ID             uuid.UUID              `json:"id"`
	Customer       RentalCustomerResponse `json:"customer"`
	Movie          RentalMovieResponse    `json:"movie"`
	DateOut        time.Time              `json:"dateOut"`
	DateReturned   *time.Time             `json:"dateReturned,omitempty"`
	RentalFeeCents *int64                 `json:"rentalFeeCents,omitempty"`
	Status         string                 `json:"status"`
}

func FromRentalView(rm *queries.RentalView) *RentalResponse {
	return &RentalResponse{
		ID: rm.ID,
		Customer: RentalCustomerResponse{
			ID:     rm.CustomerID,
			Name:   rm.CustomerName,
			Phone:  rm.CustomerPhone,
			IsGold: rm.CustomerIsGold,
		},
		Movie: RentalMovieResponse{
			ID:             rm.MovieID,
			Title:          rm.MovieTitle,
			DailyRateCents: rm.MovieDailyRateCents,
		},
		DateOut:        rm.DateOut,
		DateReturned:   rm.DateReturned,
		RentalFeeCents: rm.RentalFeeCents,
		Status:         rm.Status,
	}
}

func FromRentalViews(rms []*queries.RentalView) []*RentalResponse {
	result := make([]*RentalResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromRentalView(rm)
	}
	return result
}
