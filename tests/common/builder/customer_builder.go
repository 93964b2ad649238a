//go:build unit || e2e

package builder

import (
	"movie-rental-api/internal/domain/customer"
	reqdto "movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/usecase/queries"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID     uuid.UUID
	Name   string
	Phone  string
	IsGold bool
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:     uuid.New(),
		Name:   "Alice Johnson",
		Phone:  "555-0101",
		IsGold: false,
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	return customer.NewCustomer(c.Name, c.Phone, c.IsGold)
}

func (c *CustomerBuilder) BuildCreateRequestDTO() reqdto.CreateCustomerRequest {
	return reqdto.CreateCustomerRequest{
		Name:   c.Name,
		Phone:  c.Phone,
		IsGold: c.IsGold,
	}
}

func (c *CustomerBuilder) BuildUpdateRequestDTO() reqdto.UpdateCustomerRequest {
	return reqdto.UpdateCustomerRequest{
		Name:   c.Name,
		Phone:  c.Phone,
		IsGold: c.IsGold,
	}
}

func (c *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:     c.ID,
		Name:   c.Name,
		Phone:  c.Phone,
		IsGold: c.IsGold,
	}
}

func (c *CustomerBuilder) BuildSnapshot() *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:     c.ID,
		Name:   c.Name,
		Phone:  c.Phone,
		IsGold: c.IsGold,
	}
}

// Fluent builder methods
func (c *CustomerBuilder) WithID(id uuid.UUID) *CustomerBuilder {
	c.ID = id
	return c
}

func (c *CustomerBuilder) WithName(name string) *CustomerBuilder {
	c.Name = name
	return c
}

func (c *CustomerBuilder) WithPhone(phone string) *CustomerBuilder {
	c.Phone = phone
	return c
}

func (c *CustomerBuilder) AsGold() *CustomerBuilder {
	c.IsGold = true
	return c
}
