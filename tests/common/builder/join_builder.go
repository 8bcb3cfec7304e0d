//go:build unit || e2e

package builder

import (
	"time"

	"referral-rewards/internal/domain/referral"
	reqdto "referral-rewards/internal/handler/dto/request"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	"referral-rewards/internal/usecase/commands"
	"referral-rewards/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type JoinBuilder struct {
	GroupID              string
	NewMemberID          string
	ReferrerID           *string
	ReferrerVoucherCodes []string
	NewMemberVoucherCode *string
	DecidedAt            time.Time
}

func NewJoinBuilder() *JoinBuilder {
	referrer := "referrer-1"
	code := "S-1"
	return &JoinBuilder{
		GroupID:              "group-1",
		NewMemberID:          "member-1",
		ReferrerID:           &referrer,
		ReferrerVoucherCodes: []string{"M-1"},
		NewMemberVoucherCode: &code,
		DecidedAt:            time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func (b *JoinBuilder) With(mutate func(*JoinBuilder)) *JoinBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *JoinBuilder) BuildRequestDTO() reqdto.JoinEventRequest {
	return reqdto.JoinEventRequest{
		GroupID:     b.GroupID,
		NewMemberID: b.NewMemberID,
		ReferrerID:  b.ReferrerID,
	}
}

func (b *JoinBuilder) BuildCommand() commands.JoinRequest {
	return commands.JoinRequest{
		GroupID:     b.GroupID,
		NewMemberID: b.NewMemberID,
		ReferrerID:  b.ReferrerID,
	}
}

func (b *JoinBuilder) BuildEvent() (referral.JoinEvent, error) {
	return referral.NewJoinEvent(b.GroupID, b.NewMemberID, b.ReferrerID)
}

func (b *JoinBuilder) BuildRewardEntry() (*referral.LedgerEntry, error) {
	ev, err := b.BuildEvent()
	if err != nil {
		return nil, err
	}
	return referral.NewRewardEntry(ev, b.ReferrerVoucherCodes, b.NewMemberVoucherCode, b.DecidedAt)
}

func (b *JoinBuilder) BuildInfra() sqlc.RewardLedger {
	row := sqlc.RewardLedger{
		ID:                   uuid.New(),
		GroupID:              b.GroupID,
		NewMemberID:          b.NewMemberID,
		ReferrerVoucherCodes: b.ReferrerVoucherCodes,
		DecidedAt:            pgtype.Timestamptz{Time: b.DecidedAt, Valid: true},
	}
	if b.ReferrerID != nil {
		row.ReferrerID = pgtype.Text{String: *b.ReferrerID, Valid: true}
	}
	if b.NewMemberVoucherCode != nil {
		row.NewMemberVoucherCode = pgtype.Text{String: *b.NewMemberVoucherCode, Valid: true}
	}
	return row
}

func (b *JoinBuilder) BuildLedgerView() *queries.LedgerView {
	return &queries.LedgerView{
		ID:                   uuid.New(),
		GroupID:              b.GroupID,
		NewMemberID:          b.NewMemberID,
		ReferrerID:           b.ReferrerID,
		ReferrerVoucherCodes: b.ReferrerVoucherCodes,
		NewMemberVoucherCode: b.NewMemberVoucherCode,
		DecidedAt:            b.DecidedAt,
	}
}

// Fluent builder methods
func (b *JoinBuilder) WithGroupID(groupID string) *JoinBuilder {
	b.GroupID = groupID
	return b
}

func (b *JoinBuilder) WithNewMemberID(memberID string) *JoinBuilder {
	b.NewMemberID = memberID
	return b
}

func (b *JoinBuilder) WithReferrerID(referrerID string) *JoinBuilder {
	b.ReferrerID = &referrerID
	return b
}

func (b *JoinBuilder) WithoutReferrer() *JoinBuilder {
	b.ReferrerID = nil
	return b
}

func (b *JoinBuilder) AsSelfReferral() *JoinBuilder {
	id := b.NewMemberID
	b.ReferrerID = &id
	return b
}

func (b *JoinBuilder) AsUnreferredMarker() *JoinBuilder {
	b.ReferrerID = nil
	b.ReferrerVoucherCodes = []string{}
	b.NewMemberVoucherCode = nil
	return b
}
