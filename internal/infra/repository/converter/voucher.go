package converter

import (
	"referral-rewards/internal/domain/voucher"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	"referral-rewards/internal/pkg/pgconv"
)

func VoucherToInsertParams(v *voucher.Voucher) sqlc.InsertVoucherParams {
	return sqlc.InsertVoucherParams{
		ID:            v.ID(),
		Code:          v.Code().String(),
		IsMultiUse:    v.IsMultiUse(),
		RemainingUses: pgconv.IntToInt32(v.RemainingUses()),
		InitialUses:   pgconv.IntToInt32(v.InitialUses()),
		AddedBy:       v.AddedBy(),
		AddedAt:       pgconv.TimeToPgtype(v.AddedAt()),
	}
}
