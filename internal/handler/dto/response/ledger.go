package response

import (
	"time"

	"referral-rewards/internal/usecase/queries"
)

type LedgerEntryResponse struct {
	ID                   string    `json:"id"`
	GroupID              string    `json:"groupId"`
	NewMemberID          string    `json:"newMemberId"`
	ReferrerID           *string   `json:"referrerId,omitempty"`
	ReferrerVoucherCodes []string  `json:"referrerVoucherCodes"`
	NewMemberVoucherCode *string   `json:"newMemberVoucherCode,omitempty"`
	Rewarded             bool      `json:"rewarded"`
	DecidedAt            time.Time `json:"decidedAt"`
}

func FromLedgerView(v *queries.LedgerView) (*LedgerEntryResponse, error) {
	var res LedgerEntryResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	if res.ReferrerVoucherCodes == nil {
		res.ReferrerVoucherCodes = []string{}
	}
	res.Rewarded = len(res.ReferrerVoucherCodes) > 0 || res.NewMemberVoucherCode != nil
	return &res, nil
}
