package request

import (
	"movie-rental-api/internal/domain/customer"
)

type CreateCustomerRequest struct {
	Name   string `json:"name" binding:"required,min=5,max=50"`
	Phone  string `json:"phone" binding:"required,min=5,max=50"`
	IsGold bool   `json:"is_gold"`
}

func (r CreateCustomerRequest) ToDomain() (*customer.Customer, error) {
	return customer.NewCustomer(r.Name, r.Phone, r.IsGold)
}

type UpdateCustomerRequest struct {
	Name   string `json:"name" binding:"required,min=5,max=50"`
	Phone  string `json:"phone" binding:"required,min=5,max=50"`
	IsGold bool   `json:"is_gold"`
}
