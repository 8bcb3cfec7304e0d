package notify

import (
	"referral-rewards/internal/infra/repository"
	"referral-rewards/internal/usecase/shared"
)

// Message is the JSON document delivered to one recipient.
type Message struct {
	Kind                string   `json:"kind"`
	RecipientID         string   `json:"recipientId"`
	GroupID             string   `json:"groupId,omitempty"`
	Role                string   `json:"role,omitempty"`
	GrantedVoucherCodes []string `json:"grantedVoucherCodes,omitempty"`
	Required            int      `json:"required,omitempty"`
	Capacity            int      `json:"capacity,omitempty"`
	Shortfall           int      `json:"shortfall,omitempty"`
	NewMemberID         string   `json:"newMemberId,omitempty"`
}

func grantMessage(n shared.GrantNotice) Message {
	return Message{
		Kind:                repository.NotificationKindGrant,
		RecipientID:         n.RecipientID,
		GroupID:             n.GroupID,
		Role:                string(n.Role),
		GrantedVoucherCodes: n.GrantedVoucherCodes,
	}
}

func alertMessage(adminID string, a shared.InventoryAlert) Message {
	return Message{
		Kind:        repository.NotificationKindInventoryAlert,
		RecipientID: adminID,
		GroupID:     a.GroupID,
		Required:    a.Required,
		Capacity:    a.Capacity,
		Shortfall:   a.Shortfall(),
		NewMemberID: a.NewMemberID,
	}
}
