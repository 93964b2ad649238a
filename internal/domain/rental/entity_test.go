//go:build unit

package rental_test

import (
	"testing"
	"time"

	"movie-rental-api/internal/domain/rental"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshots() (rental.CustomerSnapshot, rental.MovieSnapshot) {
	customer := rental.CustomerSnapshot{
		ID:     uuid.New(),
		Name:   "John Smith",
		Phone:  "555-0100",
		IsGold: true,
	}
	movie := rental.MovieSnapshot{
		ID:             uuid.New(),
		Title:          "The Terminator",
		DailyRateCents: 200,
	}
	return customer, movie
}

func TestNewRental(t *testing.T) {
	customer, movie := testSnapshots()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates an active rental with embedded snapshots", func(t *testing.T) {
		r, err := rental.NewRental(customer, movie, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, rental.StatusActive, r.Status())
		assert.Equal(t, now, r.DateOut())
		assert.Nil(t, r.DateReturned())
		assert.Nil(t, r.FeeCents())

		if diff := cmp.Diff(customer, r.Customer()); diff != "" {
			t.Errorf("customer snapshot mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(movie, r.Movie()); diff != "" {
			t.Errorf("movie snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects missing customer", func(t *testing.T) {
		_, err := rental.NewRental(rental.CustomerSnapshot{}, movie, now)
		assert.ErrorIs(t, err, rental.ErrMissingCustomer)
	})

	t.Run("rejects missing movie", func(t *testing.T) {
		_, err := rental.NewRental(customer, rental.MovieSnapshot{}, now)
		assert.ErrorIs(t, err, rental.ErrMissingMovie)
	})
}

func TestReturn(t *testing.T) {
	customer, movie := testSnapshots()
	dateOut := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("closes the rental and computes the fee", func(t *testing.T) {
		r, err := rental.NewRental(customer, movie, dateOut)
		require.NoError(t, err)

		returnedAt := dateOut.AddDate(0, 0, 2)
		require.NoError(t, r.Return(returnedAt))

		assert.Equal(t, rental.StatusReturned, r.Status())
		require.NotNil(t, r.DateReturned())
		assert.Equal(t, returnedAt, *r.DateReturned())
		require.NotNil(t, r.FeeCents())
		assert.Equal(t, int64(400), *r.FeeCents())
	})

	t.Run("second return fails and leaves the first result untouched", func(t *testing.T) {
		r, err := rental.NewRental(customer, movie, dateOut)
		require.NoError(t, err)

		firstReturn := dateOut.AddDate(0, 0, 1)
		require.NoError(t, r.Return(firstReturn))

		err = r.Return(dateOut.AddDate(0, 0, 5))
		assert.ErrorIs(t, err, rental.ErrAlreadyReturned)
		assert.Equal(t, firstReturn, *r.DateReturned())
		assert.Equal(t, int64(200), *r.FeeCents())
	})
}

func TestFeeCents(t *testing.T) {
	dateOut := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		rateCents  int64
		returnedAt time.Time
		want       int64
	}{
		{
			name:       "exactly two days",
			rateCents:  200,
			returnedAt: dateOut.Add(48 * time.Hour),
			want:       400,
		},
		{
			name:       "same-day return rounds down to zero",
			rateCents:  200,
			returnedAt: dateOut.Add(3 * time.Hour),
			want:       0,
		},
		{
			name:       "DST-shortened day still counts as one day",
			rateCents:  150,
			returnedAt: dateOut.Add(23 * time.Hour),
			want:       150,
		},
		{
			name:       "DST-lengthened day still counts as one day",
			rateCents:  150,
			returnedAt: dateOut.Add(25 * time.Hour),
			want:       150,
		},
		{
			name:       "clock skew never produces a negative fee",
			rateCents:  200,
			returnedAt: dateOut.Add(-36 * time.Hour),
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rental.FeeCents(tt.rateCents, dateOut, tt.returnedAt)
			assert.Equal(t, tt.want, got)
		})
	}
}
