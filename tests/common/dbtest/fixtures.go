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

func CreateSingleUseVoucher(t *testing.T, db DBLike, code string, addedAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO vouchers (id, code, is_multi_use, remaining_uses, initial_uses, added_by, added_at) VALUES ($1, $2, false, 0, 0, 'fixture', $3)",
		id, code, addedAt)
	require.NoError(t, err)
	return id
}

func CreateMultiUseVoucher(t *testing.T, db DBLike, code string, uses int, addedAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO vouchers (id, code, is_multi_use, remaining_uses, initial_uses, added_by, added_at) VALUES ($1, $2, true, $3, $3, 'fixture', $4)",
		id, code, uses, addedAt)
	require.NoError(t, err)
	return id
}

func RemainingUses(t *testing.T, db DBLike, code string) int {
	t.Helper()

	var remaining int
	err := db.QueryRow(context.Background(), "SELECT remaining_uses FROM vouchers WHERE code = $1", code).Scan(&remaining)
	require.NoError(t, err)
	return remaining
}

// VoucherOwner returns an empty string for an unassigned voucher
func VoucherOwner(t *testing.T, db DBLike, code string) string {
	t.Helper()

	var owner *string
	err := db.QueryRow(context.Background(), "SELECT owner_id FROM vouchers WHERE code = $1", code).Scan(&owner)
	require.NoError(t, err)
	if owner == nil {
		return ""
	}
	return *owner
}

func CountLedgerEntries(t *testing.T, db DBLike, groupID, newMemberID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM reward_ledger WHERE group_id = $1 AND new_member_id = $2", groupID, newMemberID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
