package referral

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// LedgerEntry is the single adjudication record of one (newMemberID, groupID)
// join. Entries are never mutated once written.
type LedgerEntry struct {
	id                   uuid.UUID
	groupID              string
	newMemberID          string
	referrerID           *string
	referrerVoucherCodes []string
	newMemberVoucherCode *string
	decidedAt            time.Time
}

// NewRewardEntry records a granted reward. referrerCodes holds one code per
// granted unit, so a multi-use voucher consumed twice appears twice.
func NewRewardEntry(ev JoinEvent, referrerCodes []string, newMemberCode *string, decidedAt time.Time) (*LedgerEntry, error) {
	referrerID, ok := ev.ReferrerID()
	if !ok {
		return nil, ErrNotReferred
	}
	if len(referrerCodes) == 0 && newMemberCode == nil {
		return nil, ErrInvalidVoucherMix
	}
	return &LedgerEntry{
		id:                   uuid.New(),
		groupID:              ev.GroupID,
		newMemberID:          ev.NewMemberID,
		referrerID:           &referrerID,
		referrerVoucherCodes: slices.Clone(referrerCodes),
		newMemberVoucherCode: newMemberCode,
		decidedAt:            decidedAt,
	}, nil
}

// NewUnreferredMarker records that a join without a valid referral was
// adjudicated, so replays never reach allocation.
func NewUnreferredMarker(ev JoinEvent, decidedAt time.Time) *LedgerEntry {
	return &LedgerEntry{
		id:          uuid.New(),
		groupID:     ev.GroupID,
		newMemberID: ev.NewMemberID,
		decidedAt:   decidedAt,
	}
}

func ReconstructLedgerEntry(
	id uuid.UUID,
	groupID, newMemberID string,
	referrerID *string,
	referrerVoucherCodes []string,
	newMemberVoucherCode *string,
	decidedAt time.Time,
) *LedgerEntry {
	return &LedgerEntry{
		id:                   id,
		groupID:              groupID,
		newMemberID:          newMemberID,
		referrerID:           referrerID,
		referrerVoucherCodes: referrerVoucherCodes,
		newMemberVoucherCode: newMemberVoucherCode,
		decidedAt:            decidedAt,
	}
}

func (e *LedgerEntry) IsReward() bool {
	return len(e.referrerVoucherCodes) > 0 || e.newMemberVoucherCode != nil
}

func (e *LedgerEntry) ID() uuid.UUID                  { return e.id }
func (e *LedgerEntry) GroupID() string                { return e.groupID }
func (e *LedgerEntry) NewMemberID() string            { return e.newMemberID }
func (e *LedgerEntry) ReferrerID() *string            { return e.referrerID }
func (e *LedgerEntry) ReferrerVoucherCodes() []string { return slices.Clone(e.referrerVoucherCodes) }
func (e *LedgerEntry) NewMemberVoucherCode() *string  { return e.newMemberVoucherCode }
func (e *LedgerEntry) DecidedAt() time.Time           { return e.decidedAt }
