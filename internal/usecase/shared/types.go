package shared

import (
	"time"

	"referral-rewards/internal/domain/voucher"

	"github.com/google/uuid"
)

// VoucherSnapshot is the write-side view of a voucher row
type VoucherSnapshot struct {
	ID            uuid.UUID
	Code          string
	MultiUse      bool
	OwnerID       *string
	AssignedAt    *time.Time
	RemainingUses int
	InitialUses   int
	AddedBy       string
	AddedAt       time.Time
}

func (s VoucherSnapshot) ToDomain() (*voucher.Voucher, error) {
	return voucher.Reconstruct(
		s.ID,
		voucher.Code(s.Code),
		s.MultiUse,
		s.OwnerID,
		s.AssignedAt,
		s.RemainingUses,
		s.InitialUses,
		s.AddedBy,
		s.AddedAt,
	)
}
