package request

import (
	"github.com/google/uuid"
)

type CheckOutRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	MovieID    uuid.UUID `json:"movie_id" binding:"required"`
}

// ReturnRequest identifies the rental by its customer and movie pair, the way
// the clerk sees it at the counter.
type ReturnRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	MovieID    uuid.UUID `json:"movie_id" binding:"required"`
}
