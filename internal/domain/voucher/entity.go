package voucher

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyAssigned   = errors.New("voucher is already assigned")
	ErrNotSingleUse      = errors.New("voucher is not single-use")
	ErrNotMultiUse       = errors.New("voucher is not multi-use")
	ErrInsufficientUses  = errors.New("voucher has fewer remaining uses than requested")
	ErrInvalidUnits      = errors.New("units to consume must be positive")
	ErrEmptyOwner        = errors.New("owner id cannot be empty")
	ErrInconsistentState = errors.New("voucher state is inconsistent")
)

// Voucher is either single-use (assigned to exactly one owner, never
// reassigned) or multi-use (a shared counter that only decreases).
type Voucher struct {
	id            uuid.UUID
	code          Code
	multiUse      bool
	ownerID       *string
	assignedAt    *time.Time
	remainingUses int
	initialUses   int
	addedBy       string
	addedAt       time.Time
}

func NewSingleUse(code Code, addedBy string, now time.Time) *Voucher {
	return &Voucher{
		id:      uuid.New(),
		code:    code,
		addedBy: addedBy,
		addedAt: now,
	}
}

func NewMultiUse(code Code, uses int, addedBy string, now time.Time) (*Voucher, error) {
	if uses < 1 || uses > MaxUses {
		return nil, ErrInvalidRemainingUses
	}
	return &Voucher{
		id:            uuid.New(),
		code:          code,
		multiUse:      true,
		remainingUses: uses,
		initialUses:   uses,
		addedBy:       addedBy,
		addedAt:       now,
	}, nil
}

// Reconstruct rebuilds a voucher loaded from the store.
func Reconstruct(
	id uuid.UUID,
	code Code,
	multiUse bool,
	ownerID *string,
	assignedAt *time.Time,
	remainingUses, initialUses int,
	addedBy string,
	addedAt time.Time,
) (*Voucher, error) {
	if (ownerID == nil) != (assignedAt == nil) {
		return nil, ErrInconsistentState
	}
	if multiUse && ownerID != nil {
		return nil, ErrInconsistentState
	}
	if remainingUses < 0 || remainingUses > initialUses {
		return nil, ErrInconsistentState
	}
	return &Voucher{
		id:            id,
		code:          code,
		multiUse:      multiUse,
		ownerID:       ownerID,
		assignedAt:    assignedAt,
		remainingUses: remainingUses,
		initialUses:   initialUses,
		addedBy:       addedBy,
		addedAt:       addedAt,
	}, nil
}

func (v *Voucher) IsAssigned() bool {
	return !v.multiUse && v.ownerID != nil
}

func (v *Voucher) IsAvailable() bool {
	return v.Capacity() > 0
}

// Capacity is the number of reward units the voucher can still provide.
func (v *Voucher) Capacity() int {
	if v.multiUse {
		return v.remainingUses
	}
	if v.ownerID == nil {
		return 1
	}
	return 0
}

func (v *Voucher) AssignTo(ownerID string, at time.Time) error {
	if v.multiUse {
		return ErrNotSingleUse
	}
	if ownerID == "" {
		return ErrEmptyOwner
	}
	if v.ownerID != nil {
		return ErrAlreadyAssigned
	}
	v.ownerID = &ownerID
	v.assignedAt = &at
	return nil
}

func (v *Voucher) Consume(units int) error {
	if !v.multiUse {
		return ErrNotMultiUse
	}
	if units <= 0 {
		return ErrInvalidUnits
	}
	if v.remainingUses < units {
		return ErrInsufficientUses
	}
	v.remainingUses -= units
	return nil
}

func (v *Voucher) ID() uuid.UUID          { return v.id }
func (v *Voucher) Code() Code             { return v.code }
func (v *Voucher) IsMultiUse() bool       { return v.multiUse }
func (v *Voucher) Kind() Kind             { return KindOf(v.multiUse) }
func (v *Voucher) OwnerID() *string       { return v.ownerID }
func (v *Voucher) AssignedAt() *time.Time { return v.assignedAt }
func (v *Voucher) RemainingUses() int     { return v.remainingUses }
func (v *Voucher) InitialUses() int       { return v.initialUses }
func (v *Voucher) AddedBy() string        { return v.addedBy }
func (v *Voucher) AddedAt() time.Time     { return v.addedAt }
