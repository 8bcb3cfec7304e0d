package converter

import (
	"referral-rewards/internal/domain/referral"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	"referral-rewards/internal/pkg/pgconv"
)

func LedgerEntryToInsertParams(e *referral.LedgerEntry) sqlc.InsertLedgerEntryParams {
	codes := e.ReferrerVoucherCodes()
	if codes == nil {
		codes = []string{}
	}
	return sqlc.InsertLedgerEntryParams{
		ID:                   e.ID(),
		GroupID:              e.GroupID(),
		NewMemberID:          e.NewMemberID(),
		ReferrerID:           pgconv.StringPtrToPgtype(e.ReferrerID()),
		ReferrerVoucherCodes: codes,
		NewMemberVoucherCode: pgconv.StringPtrToPgtype(e.NewMemberVoucherCode()),
		DecidedAt:            pgconv.TimeToPgtype(e.DecidedAt()),
	}
}
