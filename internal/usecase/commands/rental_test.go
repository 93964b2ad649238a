//go:build unit

package commands

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"movie-rental-api/internal/domain/movie"
	"movie-rental-api/internal/domain/rental"
	reqdto "movie-rental-api/internal/handler/dto/request"
	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/pkg/clock"
	"movie-rental-api/internal/pkg/errs"
	"movie-rental-api/internal/usecase/queries"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeRental keeps the denormalized row shape the SQL schema uses.
type fakeRental struct {
	ID                  uuid.UUID
	CustomerID          uuid.UUID
	CustomerName        string
	CustomerPhone       string
	CustomerIsGold      bool
	MovieID             uuid.UUID
	MovieTitle          string
	MovieDailyRateCents int64
	DateOut             time.Time
	DateReturned        *time.Time
	FeeCents            *int64
}

type fakeStore struct {
	mu        sync.Mutex
	customers map[uuid.UUID]shared.CustomerSnapshot
	movies    map[uuid.UUID]shared.MovieSnapshot
	rentals   map[uuid.UUID]fakeRental
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers: make(map[uuid.UUID]shared.CustomerSnapshot),
		movies:    make(map[uuid.UUID]shared.MovieSnapshot),
		rentals:   make(map[uuid.UUID]fakeRental),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.movies {
		c.movies[k] = v
	}
	for k, v := range s.rentals {
		c.rentals[k] = v
	}
	return c
}

func (s *fakeStore) restore(from *fakeStore) {
	s.customers = from.customers
	s.movies = from.movies
	s.rentals = from.rentals
}

// fakeUoW serializes transactions on the store mutex and rolls back by
// restoring a pre-transaction copy, mirroring the atomicity the real
// implementation gets from Postgres.
type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	backup := u.store.clone()
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		u.store.restore(backup)
		return err
	}
	return nil
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Rentals() shared.RentalRepository     { return &fakeRentalRepo{store: t.store} }
func (t *fakeTx) Movies() shared.MovieRepository       { return &fakeMovieRepo{store: t.store} }
func (t *fakeTx) Customers() shared.CustomerRepository { return nil }
func (t *fakeTx) Genres() shared.GenreRepository       { return nil }
func (t *fakeTx) Users() shared.UserRepository         { return nil }
func (t *fakeTx) Reads() shared.CommandReads           { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                          { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) CustomerByID(_ context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	c, ok := r.store.customers[id]
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return &c, nil
}

func (r *fakeReads) MovieByID(_ context.Context, id uuid.UUID) (*shared.MovieSnapshot, error) {
	m, ok := r.store.movies[id]
	if !ok {
		return nil, infra.WrapRepoErr("movie not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return &m, nil
}

func (r *fakeReads) GenreByID(_ context.Context, id uuid.UUID) (*shared.GenreSnapshot, error) {
	return nil, infra.WrapRepoErr("genre not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (r *fakeReads) LatestRentalForPair(_ context.Context, customerID, movieID uuid.UUID) (*shared.RentalSnapshot, error) {
	var latest *fakeRental
	for _, rec := range r.store.rentals {
		if rec.CustomerID != customerID || rec.MovieID != movieID {
			continue
		}
		if latest == nil || rec.DateOut.After(latest.DateOut) {
			cp := rec
			latest = &cp
		}
	}
	if latest == nil {
		return nil, infra.WrapRepoErr("rental not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return &shared.RentalSnapshot{
		ID:                  latest.ID,
		CustomerID:          latest.CustomerID,
		MovieID:             latest.MovieID,
		MovieDailyRateCents: latest.MovieDailyRateCents,
		DateOut:             latest.DateOut,
		DateReturned:        latest.DateReturned,
		FeeCents:            latest.FeeCents,
	}, nil
}

type fakeRentalRepo struct {
	store *fakeStore
}

func (r *fakeRentalRepo) Create(_ context.Context, _ db.DBTX, entity *rental.Rental) (uuid.UUID, error) {
	for _, rec := range r.store.rentals {
		if rec.CustomerID == entity.Customer().ID && rec.MovieID == entity.Movie().ID && rec.DateReturned == nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create rental", errs.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	r.store.rentals[entity.ID()] = fakeRental{
		ID:                  entity.ID(),
		CustomerID:          entity.Customer().ID,
		CustomerName:        entity.Customer().Name,
		CustomerPhone:       entity.Customer().Phone,
		CustomerIsGold:      entity.Customer().IsGold,
		MovieID:             entity.Movie().ID,
		MovieTitle:          entity.Movie().Title,
		MovieDailyRateCents: entity.Movie().DailyRateCents,
		DateOut:             entity.DateOut(),
	}
	return entity.ID(), nil
}

func (r *fakeRentalRepo) Close(_ context.Context, _ db.DBTX, id uuid.UUID, returnedAt time.Time, feeCents int64) (int64, error) {
	rec, ok := r.store.rentals[id]
	if !ok || rec.DateReturned != nil {
		return 0, nil
	}
	rec.DateReturned = &returnedAt
	rec.FeeCents = &feeCents
	r.store.rentals[id] = rec
	return 1, nil
}

type fakeMovieRepo struct {
	store *fakeStore
}

func (r *fakeMovieRepo) Create(_ context.Context, _ db.DBTX, _ *movie.Movie) (uuid.UUID, error) {
	panic("not used in rental flows")
}

func (r *fakeMovieRepo) Update(_ context.Context, _ db.DBTX, _ *movie.Movie) (int64, error) {
	panic("not used in rental flows")
}

func (r *fakeMovieRepo) Delete(_ context.Context, _ db.DBTX, _ uuid.UUID) (int64, error) {
	panic("not used in rental flows")
}

func (r *fakeMovieRepo) DecrementStock(_ context.Context, _ db.DBTX, id uuid.UUID) (int64, error) {
	m, ok := r.store.movies[id]
	if !ok || m.NumberInStock <= 0 {
		return 0, nil
	}
	m.NumberInStock--
	r.store.movies[id] = m
	return 1, nil
}

func (r *fakeMovieRepo) IncrementStock(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	m, ok := r.store.movies[id]
	if !ok {
		return infra.WrapRepoErr("movie not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	m.NumberInStock++
	r.store.movies[id] = m
	return nil
}

// fakeRentalQueries resolves the post-commit read against the same store.
type fakeRentalQueries struct {
	store *fakeStore
}

func (q *fakeRentalQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.RentalView, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	rec, ok := q.store.rentals[id]
	if !ok {
		return nil, queries.ErrRentalNotFound
	}
	status := "active"
	if rec.DateReturned != nil {
		status = "returned"
	}
	return &queries.RentalView{
		ID:                  rec.ID,
		CustomerID:          rec.CustomerID,
		CustomerName:        rec.CustomerName,
		CustomerPhone:       rec.CustomerPhone,
		CustomerIsGold:      rec.CustomerIsGold,
		MovieID:             rec.MovieID,
		MovieTitle:          rec.MovieTitle,
		MovieDailyRateCents: rec.MovieDailyRateCents,
		DateOut:             rec.DateOut,
		DateReturned:        rec.DateReturned,
		RentalFeeCents:      rec.FeeCents,
		Status:              status,
	}, nil
}

func (q *fakeRentalQueries) List(_ context.Context) ([]*queries.RentalView, error) {
	return nil, nil
}

func (q *fakeRentalQueries) ListByCustomer(_ context.Context, _ uuid.UUID) ([]*queries.RentalView, error) {
	return nil, nil
}

type RentalCommandsTestSuite struct {
	suite.Suite
	store    *fakeStore
	clock    *clock.MockClock
	commands RentalCommands

	customerID uuid.UUID
	movieID    uuid.UUID
}

func TestRentalCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(RentalCommandsTestSuite))
}

func (s *RentalCommandsTestSuite) SetupTest() {
	s.store = newFakeStore()
	s.clock = clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))

	s.customerID = uuid.New()
	s.movieID = uuid.New()
	s.store.customers[s.customerID] = shared.CustomerSnapshot{
		ID:    s.customerID,
		Name:  "Alice Johnson",
		Phone: "555-0101",
	}
	s.store.movies[s.movieID] = shared.MovieSnapshot{
		ID:             s.movieID,
		Title:          "The Terminator",
		GenreID:        uuid.New(),
		NumberInStock:  3,
		DailyRateCents: 250,
	}

	uow := &fakeUoW{store: s.store}
	s.commands = NewRentalCommands(uow, &fakeRentalQueries{store: s.store}, s.clock)
}

func (s *RentalCommandsTestSuite) stockOf(movieID uuid.UUID) int32 {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.store.movies[movieID].NumberInStock
}

func (s *RentalCommandsTestSuite) TestCheckOut_Success() {
	view, err := s.commands.CheckOut(context.Background(), reqdto.CheckOutRequest{
		CustomerID: s.customerID,
		MovieID:    s.movieID,
	})

	s.Require().NoError(err)
	s.Equal(s.customerID, view.CustomerID)
	s.Equal("Alice Johnson", view.CustomerName)
	s.Equal(s.movieID, view.MovieID)
	s.Equal("The Terminator", view.MovieTitle)
	s.Equal(int64(250), view.MovieDailyRateCents)
	s.Equal("active", view.Status)
	s.Nil(view.DateReturned)
	s.Nil(view.RentalFeeCents)
	s.Equal(int32(2), s.stockOf(s.movieID))
}

func (s *RentalCommandsTestSuite) TestCheckOut_InvalidCustomer() {
	_, err := s.commands.CheckOut(context.Background(), reqdto.CheckOutRequest{
		CustomerID: uuid.New(),
		MovieID:    s.movieID,
	})

	s.Require().ErrorIs(err, ErrInvalidCustomer)
	s.Equal(int32(3), s.stockOf(s.movieID))
}

func (s *RentalCommandsTestSuite) TestCheckOut_InvalidMovie() {
	_, err := s.commands.CheckOut(context.Background(), reqdto.CheckOutRequest{
		CustomerID: s.customerID,
		MovieID:    uuid.New(),
	})

	s.Require().ErrorIs(err, ErrInvalidMovie)
}

func (s *RentalCommandsTestSuite) TestCheckOut_OutOfStock() {
	m := s.store.movies[s.movieID]
	m.NumberInStock = 0
	s.store.movies[s.movieID] = m

	_, err := s.commands.CheckOut(context.Background(), reqdto.CheckOutRequest{
		CustomerID: s.customerID,
		MovieID:    s.movieID,
	})

	s.Require().ErrorIs(err, ErrMovieOutOfStock)
	s.Equal(int32(0), s.stockOf(s.movieID))
}

func (s *RentalCommandsTestSuite) TestCheckOut_PairAlreadyOpen() {
	req := reqdto.CheckOutRequest{CustomerID: s.customerID, MovieID: s.movieID}

	_, err := s.commands.CheckOut(context.Background(), req)
	s.Require().NoError(err)

	_, err = s.commands.CheckOut(context.Background(), req)
	s.Require().ErrorIs(err, ErrRentalAlreadyOpen)

	// The rejected checkout must not leak its stock decrement.
	s.Equal(int32(2), s.stockOf(s.movieID))
}

func (s *RentalCommandsTestSuite) TestReturn_Success() {
	req := reqdto.CheckOutRequest{CustomerID: s.customerID, MovieID: s.movieID}
	_, err := s.commands.CheckOut(context.Background(), req)
	s.Require().NoError(err)

	s.clock.Add(48 * time.Hour)

	view, err := s.commands.Return(context.Background(), reqdto.ReturnRequest{
		CustomerID: s.customerID,
		MovieID:    s.movieID,
	})

	s.Require().NoError(err)
	s.Equal("returned", view.Status)
	s.Require().NotNil(view.DateReturned)
	s.Require().NotNil(view.RentalFeeCents)
	s.Equal(int64(500), *view.RentalFeeCents)
	s.Equal(int32(3), s.stockOf(s.movieID))
}

func (s *RentalCommandsTestSuite) TestReturn_SameDayChargesNothing() {
	_, err := s.commands.CheckOut(context.Background(), reqdto.CheckOutRequest{
		CustomerID: s.customerID,
		MovieID:    s.movieID,
	})
	s.Require().NoError(err)

	s.clock.Add(2 * time.Hour)

	view, err := s.commands.Return(context.Background(), reqdto.ReturnRequest{
		CustomerID: s.customerID,
		MovieID:    s.movieID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(view.RentalFeeCents)
	s.Equal(int64(0), *view.RentalFeeCents)
}

func (s *RentalCommandsTestSuite) TestReturn_NotFound() {
	_, err := s.commands.Return(context.Background(), reqdto.ReturnRequest{
		CustomerID: s.customerID,
		MovieID:    s.movieID,
	})

	s.Require().ErrorIs(err, ErrRentalNotFound)
}

func (s *RentalCommandsTestSuite) TestReturn_AlreadyReturned() {
	_, err := s.commands.CheckOut(context.Background(), reqdto.CheckOutRequest{
		CustomerID: s.customerID,
		MovieID:    s.movieID,
	})
	s.Require().NoError(err)

	s.clock.Add(24 * time.Hour)
	first, err := s.commands.Return(context.Background(), reqdto.ReturnRequest{
		CustomerID: s.customerID,
		MovieID:    s.movieID,
	})
	s.Require().NoError(err)

	s.clock.Add(24 * time.Hour)
	_, err = s.commands.Return(context.Background(), reqdto.ReturnRequest{
		CustomerID: s.customerID,
		MovieID:    s.movieID,
	})
	s.Require().ErrorIs(err, ErrRentalAlreadyReturned)

	// The failed second return must not restock or recompute the fee.
	s.Equal(int32(3), s.stockOf(s.movieID))
	view, err := (&fakeRentalQueries{store: s.store}).GetByID(context.Background(), first.ID)
	s.Require().NoError(err)
	s.Equal(*first.RentalFeeCents, *view.RentalFeeCents)
}

func TestCheckOut_ConcurrentSingleCopy(t *testing.T) {
	store := newFakeStore()
	movieID := uuid.New()
	store.movies[movieID] = shared.MovieSnapshot{
		ID:             movieID,
		Title:          "Casablanca",
		GenreID:        uuid.New(),
		NumberInStock:  1,
		DailyRateCents: 199,
	}

	const workers = 16
	customerIDs := make([]uuid.UUID, workers)
	for i := range customerIDs {
		customerIDs[i] = uuid.New()
		store.customers[customerIDs[i]] = shared.CustomerSnapshot{
			ID:    customerIDs[i],
			Name:  "Customer",
			Phone: "555-0000",
		}
	}

	cmds := NewRentalCommands(
		&fakeUoW{store: store},
		&fakeRentalQueries{store: store},
		clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
	)

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(customerID uuid.UUID) {
			defer wg.Done()
			_, err := cmds.CheckOut(context.Background(), reqdto.CheckOutRequest{
				CustomerID: customerID,
				MovieID:    movieID,
			})
			results <- err
		}(customerIDs[i])
	}
	wg.Wait()
	close(results)

	var succeeded, outOfStock int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrMovieOutOfStock):
			outOfStock++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	require.Equal(t, 1, succeeded, "exactly one checkout may win the last copy")
	require.Equal(t, workers-1, outOfStock)

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Equal(t, int32(0), store.movies[movieID].NumberInStock)
}
