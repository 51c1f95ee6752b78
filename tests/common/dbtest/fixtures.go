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
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestDealer(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	dealerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO dealers (id, name, email, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		dealerID, name, email, TestPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM dealers WHERE email = $1", email).Scan(&dealerID)
	}

	return dealerID
}

func CreateTestCar(t *testing.T, db DBLike, dealerID uuid.UUID, make, model string) uuid.UUID {
	t.Helper()

	carID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO cars (id, dealer_id, make, model, year) VALUES ($1, $2, $3, $4, 2020)",
		carID, dealerID, make, model)
	require.NoError(t, err)

	return carID
}

func CreateTestAuction(t *testing.T, db DBLike, carID, listingDealerID uuid.UUID, status string, startTime, endTime time.Time, startingPriceCents, minIncrementCents int64) uuid.UUID {
	t.Helper()

	auctionID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO auctions (id, car_id, listing_dealer_id, status, start_time, end_time, starting_price_cents, min_increment_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		auctionID, carID, listingDealerID, status, startTime, endTime, startingPriceCents, minIncrementCents)
	require.NoError(t, err)

	return auctionID
}

func JoinTestAuction(t *testing.T, db DBLike, auctionID, dealerID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO auction_entries (auction_id, dealer_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		auctionID, dealerID)
	require.NoError(t, err)
}

func AuctionStatus(t *testing.T, db DBLike, auctionID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM auctions WHERE id = $1", auctionID).Scan(&status)
	require.NoError(t, err)
	return status
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
