package repository

import (
	"context"
	"time"

	"referral-rewards/internal/domain/voucher"
	"referral-rewards/internal/infra"
	"referral-rewards/internal/infra/repository/converter"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	"referral-rewards/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/repository/voucher_mock.go -package=repositorymock

type VoucherWriteQueries interface {
	InsertVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertVoucherParams) (int64, error)
	ConsumeVoucherUses(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeVoucherUsesParams) (int64, error)
	AssignVoucherOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignVoucherOwnerParams) (int64, error)
}

type VoucherRepository struct {
	queries VoucherWriteQueries
	db      sqlc.DBTX
}

func NewVoucherRepository(queries VoucherWriteQueries, db sqlc.DBTX) *VoucherRepository {
	return &VoucherRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherRepository) Insert(ctx context.Context, tx sqlc.DBTX, v *voucher.Voucher) (bool, error) {
	n, err := r.queries.InsertVoucher(ctx, tx, converter.VoucherToInsertParams(v))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert voucher", err)
	}
	return n == 1, nil
}

// Zero affected rows means another commit consumed the uses first.
func (r *VoucherRepository) ConsumeUses(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, units int) error {
	n, err := r.queries.ConsumeVoucherUses(ctx, tx, sqlc.ConsumeVoucherUsesParams{
		Units: pgconv.IntToInt32(units),
		ID:    id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to consume voucher uses", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("voucher has fewer remaining uses than planned", nil, infra.KindPreconditionFailed)
	}
	return nil
}

// Zero affected rows means the voucher was assigned by another commit.
func (r *VoucherRepository) AssignOwner(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, ownerID string, at time.Time) error {
	n, err := r.queries.AssignVoucherOwner(ctx, tx, sqlc.AssignVoucherOwnerParams{
		ID:         id,
		OwnerID:    pgconv.StringToPgtype(ownerID),
		AssignedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to assign voucher owner", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("voucher is no longer unassigned", nil, infra.KindPreconditionFailed)
	}
	return nil
}
