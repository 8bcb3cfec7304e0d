package request

import (
	"referral-rewards/internal/usecase/commands"
)

// JoinEventRequest is the payload the messaging platform posts when a member
// joins a group. ReferrerID is absent for organic joins.
type JoinEventRequest struct {
	GroupID     string  `json:"groupId" binding:"required,max=128"`
	NewMemberID string  `json:"newMemberId" binding:"required,max=128"`
	ReferrerID  *string `json:"referrerId" binding:"omitempty,max=128"`
}

func (r *JoinEventRequest) ToCommand() commands.JoinRequest {
	return commands.JoinRequest{
		GroupID:     r.GroupID,
		NewMemberID: r.NewMemberID,
		ReferrerID:  r.ReferrerID,
	}
}
