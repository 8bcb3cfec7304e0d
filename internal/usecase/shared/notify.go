package shared

import (
	"context"

	"referral-rewards/internal/domain/allocation"
)

// GrantNotice is handed to the dispatcher once per recipient after a commit.
type GrantNotice struct {
	RecipientID         string
	Role                allocation.Role
	GrantedVoucherCodes []string
	GroupID             string
}

type InventoryAlert struct {
	Required    int
	Capacity    int
	GroupID     string
	NewMemberID string
}

func (a InventoryAlert) Shortfall() int {
	if a.Required <= a.Capacity {
		return 0
	}
	return a.Required - a.Capacity
}

// Notifier delivery is best effort. Implementations isolate and log failures
// per recipient and never report them to the caller.
type Notifier interface {
	NotifyGrants(ctx context.Context, notices []GrantNotice)
	AlertAdmins(ctx context.Context, alert InventoryAlert)
}
