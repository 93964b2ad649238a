package genre

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("genre name must be 5 to 50 characters")

type Genre struct {
	id   uuid.UUID
	name string
}

func NewGenre(name string) (*Genre, error) {
	name = strings.TrimSpace(name)
	if len(name) < 5 || len(name) > 50 {
		return nil, ErrInvalidName
	}
	return &Genre{id: uuid.New(), name: name}, nil
}

func Reconstruct(id uuid.UUID, name string) *Genre {
	return &Genre{id: id, name: name}
}

func (g *Genre) ID() uuid.UUID { return g.id }
func (g *Genre) Name() string  { return g.name }

func (g *Genre) Rename(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 5 || len(name) > 50 {
		return ErrInvalidName
	}
	g.name = name
	return nil
}
