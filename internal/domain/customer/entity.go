package customer

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidName  = errors.New("customer name must be 5 to 50 characters")
	ErrInvalidPhone = errors.New("customer phone must be 5 to 50 characters")
)

type Customer struct {
	id     uuid.UUID
	name   string
	phone  string
	isGold bool
}

func NewCustomer(name, phone string, isGold bool) (*Customer, error) {
	c := &Customer{id: uuid.New(), isGold: isGold}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	if err := c.setPhone(phone); err != nil {
		return nil, err
	}
	return c, nil
}

func Reconstruct(id uuid.UUID, name, phone string, isGold bool) *Customer {
	return &Customer{id: id, name: name, phone: phone, isGold: isGold}
}

func (c *Customer) ID() uuid.UUID { return c.id }
func (c *Customer) Name() string  { return c.name }
func (c *Customer) Phone() string { return c.phone }
func (c *Customer) IsGold() bool  { return c.isGold }

func (c *Customer) Update(name, phone string, isGold bool) error {
	if err := c.setName(name); err != nil {
		return err
	}
	if err := c.setPhone(phone); err != nil {
		return err
	}
	c.isGold = isGold
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 5 || len(name) > 50 {
		return ErrInvalidName
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if len(phone) < 5 || len(phone) > 50 {
		return ErrInvalidPhone
	}
	c.phone = phone
	return nil
}
