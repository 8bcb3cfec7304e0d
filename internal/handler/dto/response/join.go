package response

import (
	"referral-rewards/internal/usecase/commands"
)

type GrantResponse struct {
	RecipientID  string   `json:"recipientId"`
	Role         string   `json:"role"`
	VoucherCodes []string `json:"voucherCodes"`
}

type JoinResponse struct {
	Outcome   string           `json:"outcome"`
	Reason    string           `json:"reason,omitempty"`
	Shortfall int              `json:"shortfall,omitempty"`
	Attempts  int              `json:"attempts,omitempty"`
	Grants    []*GrantResponse `json:"grants,omitempty"`
}

func FromJoinResult(r *commands.JoinResult) *JoinResponse {
	resp := &JoinResponse{
		Outcome:   r.Outcome.String(),
		Reason:    r.Reason.String(),
		Shortfall: r.Shortfall,
		Attempts:  r.Attempts,
	}
	for _, g := range r.Grants {
		resp.Grants = append(resp.Grants, &GrantResponse{
			RecipientID:  g.RecipientID,
			Role:         string(g.Role),
			VoucherCodes: g.GrantedVoucherCodes,
		})
	}
	return resp
}
