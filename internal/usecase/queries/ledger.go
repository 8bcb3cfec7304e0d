package queries

import (
	"context"
	"time"

	"referral-rewards/internal/infra"
	"referral-rewards/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ledger.go -destination=../../tests/mock/queries/ledger_mock.go -package=queriesmock

type LedgerView struct {
	ID                   uuid.UUID `json:"id"`
	GroupID              string    `json:"group_id"`
	NewMemberID          string    `json:"new_member_id"`
	ReferrerID           *string   `json:"referrer_id,omitempty"`
	ReferrerVoucherCodes []string  `json:"referrer_voucher_codes"`
	NewMemberVoucherCode *string   `json:"new_member_voucher_code,omitempty"`
	DecidedAt            time.Time `json:"decided_at"`
}

type LedgerReadStore interface {
	FindByMember(ctx context.Context, groupID, newMemberID string) (*LedgerView, error)
}

type LedgerQueries interface {
	Get(ctx context.Context, groupID, newMemberID string) (*LedgerView, error)
}

type ledgerQueriesImpl struct {
	store LedgerReadStore
}

func NewLedgerQueries(store LedgerReadStore) LedgerQueries {
	return &ledgerQueriesImpl{store: store}
}

func (q *ledgerQueriesImpl) Get(ctx context.Context, groupID, newMemberID string) (*LedgerView, error) {
	view, err := q.store.FindByMember(ctx, groupID, newMemberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLedgerEntryNotFound
		}
		return nil, err
	}
	return view, nil
}
