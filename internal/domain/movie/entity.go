package movie

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle  = errors.New("movie title must be 5 to 255 characters")
	ErrNegativeStock = errors.New("number in stock cannot be negative")
	ErrNegativeRate  = errors.New("daily rental rate cannot be negative")
)

type Movie struct {
	id             uuid.UUID
	title          string
	genreID        uuid.UUID
	numberInStock  int32
	dailyRateCents int64
}

func NewMovie(title string, genreID uuid.UUID, numberInStock int32, dailyRateCents int64) (*Movie, error) {
	m := &Movie{id: uuid.New(), genreID: genreID}
	if err := m.set(title, numberInStock, dailyRateCents); err != nil {
		return nil, err
	}
	return m, nil
}

func Reconstruct(id uuid.UUID, title string, genreID uuid.UUID, numberInStock int32, dailyRateCents int64) *Movie {
	return &Movie{
		id:             id,
		title:          title,
		genreID:        genreID,
		numberInStock:  numberInStock,
		dailyRateCents: dailyRateCents,
	}
}

func (m *Movie) ID() uuid.UUID         { return m.id }
func (m *Movie) Title() string         { return m.title }
func (m *Movie) GenreID() uuid.UUID    { return m.genreID }
func (m *Movie) NumberInStock() int32  { return m.numberInStock }
func (m *Movie) DailyRateCents() int64 { return m.dailyRateCents }

func (m *Movie) InStock() bool {
	return m.numberInStock > 0
}

func (m *Movie) Update(title string, genreID uuid.UUID, numberInStock int32, dailyRateCents int64) error {
	if err := m.set(title, numberInStock, dailyRateCents); err != nil {
		return err
	}
	m.genreID = genreID
	return nil
}

func (m *Movie) set(title string, numberInStock int32, dailyRateCents int64) error {
	title = strings.TrimSpace(title)
	if len(title) < 5 || len(title) > 255 {
		return ErrInvalidTitle
	}
	if numberInStock < 0 {
		return ErrNegativeStock
	}
	if dailyRateCents < 0 {
		return ErrNegativeRate
	}
	m.title = title
	m.numberInStock = numberInStock
	m.dailyRateCents = dailyRateCents
	return nil
}
