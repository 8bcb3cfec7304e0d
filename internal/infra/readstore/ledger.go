package readstore

import (
	"context"

	"referral-rewards/internal/infra"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	"referral-rewards/internal/pkg/pgconv"
	"referral-rewards/internal/usecase/queries"
)

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/readstore/ledger_mock.go -package=readstoremock

type LedgerReadQueries interface {
	LedgerEntryExists(ctx context.Context, db sqlc.DBTX, arg sqlc.LedgerEntryExistsParams) (bool, error)
	GetLedgerEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLedgerEntryParams) (sqlc.RewardLedger, error)
}

type LedgerReadStore struct {
	queries LedgerReadQueries
	db      sqlc.DBTX
}

func NewLedgerReadStore(queries LedgerReadQueries, db sqlc.DBTX) *LedgerReadStore {
	return &LedgerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LedgerReadStore) Exists(ctx context.Context, groupID, newMemberID string) (bool, error) {
	exists, err := r.queries.LedgerEntryExists(ctx, r.db, sqlc.LedgerEntryExistsParams{
		GroupID:     groupID,
		NewMemberID: newMemberID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check ledger entry", err)
	}
	return exists, nil
}

func (r *LedgerReadStore) FindByMember(ctx context.Context, groupID, newMemberID string) (*queries.LedgerView, error) {
	row, err := r.queries.GetLedgerEntry(ctx, r.db, sqlc.GetLedgerEntryParams{
		GroupID:     groupID,
		NewMemberID: newMemberID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ledger entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get ledger entry", err)
	}

	codes := row.ReferrerVoucherCodes
	if codes == nil {
		codes = []string{}
	}
	return &queries.LedgerView{
		ID:                   row.ID,
		GroupID:              row.GroupID,
		NewMemberID:          row.NewMemberID,
		ReferrerID:           pgconv.StringPtrFromPgtype(row.ReferrerID),
		ReferrerVoucherCodes: codes,
		NewMemberVoucherCode: pgconv.StringPtrFromPgtype(row.NewMemberVoucherCode),
		DecidedAt:            pgconv.TimeFromPgtype(row.DecidedAt),
	}, nil
}
