package shared

import (
	"context"
	"time"

	"movie-rental-api/internal/domain/customer"
	"movie-rental-api/internal/domain/genre"
	"movie-rental-api/internal/domain/movie"
	"movie-rental-api/internal/domain/rental"
	"movie-rental-api/internal/domain/user"
	"movie-rental-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rentals() RentalRepository
	Movies() MovieRepository
	Customers() CustomerRepository
	Genres() GenreRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the lookups command handlers need before mutating.
// Inside a transaction they observe that transaction's snapshot.
type CommandReads interface {
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	MovieByID(ctx context.Context, id uuid.UUID) (*MovieSnapshot, error)
	GenreByID(ctx context.Context, id uuid.UUID) (*GenreSnapshot, error)
	LatestRentalForPair(ctx context.Context, customerID, movieID uuid.UUID) (*RentalSnapshot, error)
}

type RentalRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *rental.Rental) (uuid.UUID, error)
	// Close marks the rental returned only if it is still open; the returned
	// count is the number of rows actually closed.
	Close(ctx context.Context, tx db.DBTX, id uuid.UUID, returnedAt time.Time, feeCents int64) (int64, error)
}

type MovieRepository interface {
	Create(ctx context.Context, tx db.DBTX, m *movie.Movie) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, m *movie.Movie) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
	// DecrementStock succeeds only while stock is positive; zero rows means
	// the movie was out of stock at the moment of mutation.
	DecrementStock(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
	IncrementStock(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type CustomerRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, c *customer.Customer) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
}

type GenreRepository interface {
	Create(ctx context.Context, tx db.DBTX, g *genre.Genre) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, g *genre.Genre) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
