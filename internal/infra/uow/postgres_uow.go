package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"movie-rental-api/internal/infra"
	"movie-rental-api/internal/infra/db"
	"movie-rental-api/internal/infra/repository"
	"movie-rental-api/internal/pkg/errs"
	"movie-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes;
// conditional UPDATEs guard the stock and return invariants.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	rentalRepo   shared.RentalRepository
	movieRepo    shared.MovieRepository
	customerRepo shared.CustomerRepository
	genreRepo    shared.GenreRepository
	userRepo     shared.UserRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Rentals() shared.RentalRepository {
	if t.rentalRepo == nil {
		t.rentalRepo = repository.NewRentalRepository()
	}
	return t.rentalRepo
}

func (t *pgTx) Movies() shared.MovieRepository {
	if t.movieRepo == nil {
		t.movieRepo = repository.NewMovieRepository()
	}
	return t.movieRepo
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository()
	}
	return t.customerRepo
}

func (t *pgTx) Genres() shared.GenreRepository {
	if t.genreRepo == nil {
		t.genreRepo = repository.NewGenreRepository()
	}
	return t.genreRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

// commandReads queries whatever connection it was built on, so inside a
// transaction the snapshots reflect that transaction's view.
type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) CustomerByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	const q = `SELECT id, name, phone, is_gold FROM customers WHERE id = $1`

	var s shared.CustomerSnapshot
	err := r.dbtx.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.Phone, &s.IsGold)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read customer snapshot", err)
	}
	return &s, nil
}

func (r *commandReads) MovieByID(ctx context.Context, id uuid.UUID) (*shared.MovieSnapshot, error) {
	const q = `SELECT id, title, genre_id, number_in_stock, daily_rate_cents FROM movies WHERE id = $1`

	var s shared.MovieSnapshot
	err := r.dbtx.QueryRow(ctx, q, id).Scan(&s.ID, &s.Title, &s.GenreID, &s.NumberInStock, &s.DailyRateCents)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("movie not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read movie snapshot", err)
	}
	return &s, nil
}

func (r *commandReads) GenreByID(ctx context.Context, id uuid.UUID) (*shared.GenreSnapshot, error) {
	const q = `SELECT id, name FROM genres WHERE id = $1`

	var s shared.GenreSnapshot
	err := r.dbtx.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("genre not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read genre snapshot", err)
	}
	return &s, nil
}

func (r *commandReads) LatestRentalForPair(ctx context.Context, customerID, movieID uuid.UUID) (*shared.RentalSnapshot, error) {
	const q = `
		SELECT id, customer_id, movie_id, movie_daily_rate_cents, date_out, date_returned, rental_fee_cents
		FROM rentals
		WHERE customer_id = $1 AND movie_id = $2
		ORDER BY date_out DESC
		LIMIT 1`

	var s shared.RentalSnapshot
	err := r.dbtx.QueryRow(ctx, q, customerID, movieID).Scan(
		&s.ID, &s.CustomerID, &s.MovieID, &s.MovieDailyRateCents,
		&s.DateOut, &s.DateReturned, &s.FeeCents,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read rental snapshot", err)
	}
	return &s, nil
}
