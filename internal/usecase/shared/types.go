package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer independent of read-side view
// types.
type CustomerSnapshot struct {
	ID     uuid.UUID
	Name   string
	Phone  string
	IsGold bool
}

type MovieSnapshot struct {
	ID             uuid.UUID
	Title          string
	GenreID        uuid.UUID
	NumberInStock  int32
	DailyRateCents int64
}

type GenreSnapshot struct {
	ID   uuid.UUID
	Name string
}

type RentalSnapshot struct {
	ID                  uuid.UUID
	CustomerID          uuid.UUID
	MovieID             uuid.UUID
	MovieDailyRateCents int64
	DateOut             time.Time
	DateReturned        *time.Time
	FeeCents            *int64
}
