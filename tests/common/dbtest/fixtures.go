//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, "Test User", email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestGenre(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	genreID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO genres (id, name) VALUES ($1, $2)", genreID, name)
	require.NoError(t, err)

	return genreID
}

func CreateTestCustomer(t *testing.T, db DBLike, name, phone string, isGold bool) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO customers (id, name, phone, is_gold) VALUES ($1, $2, $3, $4)",
		customerID, name, phone, isGold)
	require.NoError(t, err)

	return customerID
}

func CreateTestMovie(t *testing.T, db DBLike, title string, genreID uuid.UUID, stock int32, dailyRateCents int64) uuid.UUID {
	t.Helper()

	movieID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO movies (id, title, genre_id, number_in_stock, daily_rate_cents) VALUES ($1, $2, $3, $4, $5)",
		movieID, title, genreID, stock, dailyRateCents)
	require.NoError(t, err)

	return movieID
}

func CreateTestRental(t *testing.T, db DBLike, customerID, movieID uuid.UUID, dailyRateCents int64, dateOut time.Time) uuid.UUID {
	t.Helper()

	rentalID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO rentals (id, customer_id, customer_name, customer_phone, customer_is_gold,
		     movie_id, movie_title, movie_daily_rate_cents, date_out)
		 VALUES ($1, $2, 'Fixture Customer', '555-0000', false, $3, 'Fixture Movie', $4, $5)`,
		rentalID, customerID, movieID, dailyRateCents, dateOut)
	require.NoError(t, err)

	return rentalID
}

func MovieStock(t *testing.T, db DBLike, movieID uuid.UUID) int32 {
	t.Helper()

	var stock int32
	err := db.QueryRow(context.Background(),
		"SELECT number_in_stock FROM movies WHERE id = $1", movieID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
