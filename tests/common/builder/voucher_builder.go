//go:build unit || e2e

package builder

import (
	"time"

	"referral-rewards/internal/domain/voucher"
	reqdto "referral-rewards/internal/handler/dto/request"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	"referral-rewards/internal/usecase/queries"
	"referral-rewards/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherBuilder struct {
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

func NewVoucherBuilder() *VoucherBuilder {
	return &VoucherBuilder{
		ID:      uuid.New(),
		Code:    "CODE-" + uuid.NewString()[:8],
		AddedBy: "admin-1",
		AddedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *VoucherBuilder) BuildDomain() (*voucher.Voucher, error) {
	return b.BuildSnapshot().ToDomain()
}

func (b *VoucherBuilder) BuildSnapshot() shared.VoucherSnapshot {
	return shared.VoucherSnapshot{
		ID:            b.ID,
		Code:          b.Code,
		MultiUse:      b.MultiUse,
		OwnerID:       b.OwnerID,
		AssignedAt:    b.AssignedAt,
		RemainingUses: b.RemainingUses,
		InitialUses:   b.InitialUses,
		AddedBy:       b.AddedBy,
		AddedAt:       b.AddedAt,
	}
}

func (b *VoucherBuilder) BuildInfra() sqlc.Vouchers {
	row := sqlc.Vouchers{
		ID:            b.ID,
		Code:          b.Code,
		IsMultiUse:    b.MultiUse,
		RemainingUses: int32(b.RemainingUses),
		InitialUses:   int32(b.InitialUses),
		AddedBy:       b.AddedBy,
		AddedAt:       pgtype.Timestamptz{Time: b.AddedAt, Valid: true},
	}
	if b.OwnerID != nil {
		row.OwnerID = pgtype.Text{String: *b.OwnerID, Valid: true}
	}
	if b.AssignedAt != nil {
		row.AssignedAt = pgtype.Timestamptz{Time: *b.AssignedAt, Valid: true}
	}
	return row
}

func (b *VoucherBuilder) BuildView() *queries.VoucherView {
	return &queries.VoucherView{
		ID:            b.ID,
		Code:          b.Code,
		MultiUse:      b.MultiUse,
		OwnerID:       b.OwnerID,
		AssignedAt:    b.AssignedAt,
		RemainingUses: int32(b.RemainingUses),
		InitialUses:   int32(b.InitialUses),
		AddedBy:       b.AddedBy,
		AddedAt:       b.AddedAt,
	}
}

func (b *VoucherBuilder) BuildAddRequestDTO(codes ...string) reqdto.AddVouchersRequest {
	if len(codes) == 0 {
		codes = []string{b.Code}
	}
	return reqdto.AddVouchersRequest{
		Codes:         codes,
		MultiUse:      b.MultiUse,
		RemainingUses: b.RemainingUses,
	}
}

// Fluent builder methods
func (b *VoucherBuilder) WithID(id uuid.UUID) *VoucherBuilder {
	b.ID = id
	return b
}

func (b *VoucherBuilder) WithCode(code string) *VoucherBuilder {
	b.Code = code
	return b
}

func (b *VoucherBuilder) WithAddedAt(at time.Time) *VoucherBuilder {
	b.AddedAt = at
	return b
}

func (b *VoucherBuilder) WithAddedBy(adminID string) *VoucherBuilder {
	b.AddedBy = adminID
	return b
}

func (b *VoucherBuilder) AsMultiUse(uses int) *VoucherBuilder {
	b.MultiUse = true
	b.RemainingUses = uses
	b.InitialUses = uses
	b.OwnerID = nil
	b.AssignedAt = nil
	return b
}

func (b *VoucherBuilder) WithRemainingUses(uses int) *VoucherBuilder {
	b.RemainingUses = uses
	return b
}

func (b *VoucherBuilder) AssignedTo(ownerID string, at time.Time) *VoucherBuilder {
	b.MultiUse = false
	b.RemainingUses = 0
	b.InitialUses = 0
	b.OwnerID = &ownerID
	b.AssignedAt = &at
	return b
}
