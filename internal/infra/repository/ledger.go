package repository

import (
	"context"

	"referral-rewards/internal/domain/referral"
	"referral-rewards/internal/infra"
	"referral-rewards/internal/infra/repository/converter"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/repository/ledger_mock.go -package=repositorymock

type LedgerWriteQueries interface {
	InsertLedgerEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertLedgerEntryParams) (int64, error)
}

type LedgerRepository struct {
	queries LedgerWriteQueries
	db      sqlc.DBTX
}

func NewLedgerRepository(queries LedgerWriteQueries, db sqlc.DBTX) *LedgerRepository {
	return &LedgerRepository{
		queries: queries,
		db:      db,
	}
}

// Insert relies on the (new_member_id, group_id) unique key; a concurrent
// writer that got there first makes this a no-op.
func (r *LedgerRepository) Insert(ctx context.Context, tx sqlc.DBTX, entry *referral.LedgerEntry) (bool, error) {
	n, err := r.queries.InsertLedgerEntry(ctx, tx, converter.LedgerEntryToInsertParams(entry))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert ledger entry", err)
	}
	return n == 1, nil
}
