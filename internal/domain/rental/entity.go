package rental

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomer = errors.New("rental requires a customer snapshot")
	ErrMissingMovie    = errors.New("rental requires a movie snapshot")
	ErrAlreadyReturned = errors.New("rental is already returned")
)

// CustomerSnapshot is the customer data frozen into the rental at checkout.
// Later edits to the customer record do not alter historical rentals.
type CustomerSnapshot struct {
	ID     uuid.UUID
	Name   string
	Phone  string
	IsGold bool
}

// MovieSnapshot freezes the movie's title and rate at checkout time.
type MovieSnapshot struct {
	ID             uuid.UUID
	Title          string
	DailyRateCents int64
}

type Rental struct {
	id           uuid.UUID
	customer     CustomerSnapshot
	movie        MovieSnapshot
	dateOut      time.Time
	dateReturned *time.Time
	feeCents     *int64
}

func NewRental(customer CustomerSnapshot, movie MovieSnapshot, now time.Time) (*Rental, error) {
	if customer.ID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if movie.ID == uuid.Nil {
		return nil, ErrMissingMovie
	}
	return &Rental{
		id:       uuid.New(),
		customer: customer,
		movie:    movie,
		dateOut:  now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	customer CustomerSnapshot,
	movie MovieSnapshot,
	dateOut time.Time,
	dateReturned *time.Time,
	feeCents *int64,
) *Rental {
	return &Rental{
		id:           id,
		customer:     customer,
		movie:        movie,
		dateOut:      dateOut,
		dateReturned: dateReturned,
		feeCents:     feeCents,
	}
}

// Return closes the rental and computes its fee. The transition is one-way;
// a returned rental is never reopened.
func (r *Rental) Return(now time.Time) error {
	if r.dateReturned != nil {
		return ErrAlreadyReturned
	}
	fee := FeeCents(r.movie.DailyRateCents, r.dateOut, now)
	r.dateReturned = &now
	r.feeCents = &fee
	return nil
}

func (r *Rental) Status() Status {
	if r.dateReturned != nil {
		return StatusReturned
	}
	return StatusActive
}

func (r *Rental) IsReturned() bool {
	return r.dateReturned != nil
}

func (r *Rental) ID() uuid.UUID              { return r.id }
func (r *Rental) Customer() CustomerSnapshot { return r.customer }
func (r *Rental) Movie() MovieSnapshot       { return r.movie }
func (r *Rental) DateOut() time.Time         { return r.dateOut }
func (r *Rental) DateReturned() *time.Time   { return r.dateReturned }
func (r *Rental) FeeCents() *int64           { return r.feeCents }

// FeeCents charges the daily rate for each elapsed day.
// The day count is rounded to the nearest whole day so that daylight-saving
// shifts (23h or 25h "days") still count as one day.
func FeeCents(dailyRateCents int64, dateOut, returnedAt time.Time) int64 {
	days := int64(math.Round(returnedAt.Sub(dateOut).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return dailyRateCents * days
}
