package response

import (
	"movie-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	IsGold bool      `json:"isGold"`
}

func FromCustomerView(rm *queries.CustomerView) *CustomerResponse {
	return &CustomerResponse{
		ID:     rm.ID,
		Name:   rm.Name,
		Phone:  rm.Phone,
		IsGold: rm.IsGold,
	}
}

func FromCustomerViews(rms []*queries.CustomerView) []*CustomerResponse {
	result := make([]*CustomerResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromCustomerView(rm)
	}
	return result
}
