package shared

import (
	"context"
	"time"

	"referral-rewards/internal/domain/referral"
	"referral-rewards/internal/domain/voucher"
	sqlc "referral-rewards/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Vouchers() VoucherRepository
	Ledger() LedgerRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	LedgerExists(ctx context.Context, groupID, newMemberID string) (bool, error)
	// AvailableVouchers returns unassigned single-use and non-exhausted
	// multi-use vouchers.
	AvailableVouchers(ctx context.Context) ([]VoucherSnapshot, error)
}

type VoucherRepository interface {
	// Insert reports false when the code already exists.
	Insert(ctx context.Context, tx sqlc.DBTX, v *voucher.Voucher) (bool, error)
	// ConsumeUses fails with KindPreconditionFailed when fewer than units remain.
	ConsumeUses(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, units int) error
	// AssignOwner fails with KindPreconditionFailed when the voucher already has an owner.
	AssignOwner(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, ownerID string, at time.Time) error
}

type LedgerRepository interface {
	// Insert reports false when (newMemberID, groupID) is already adjudicated.
	Insert(ctx context.Context, tx sqlc.DBTX, entry *referral.LedgerEntry) (bool, error)
}
