package allocation

import (
	"errors"
	"fmt"

	"referral-rewards/internal/domain/voucher"

	"github.com/google/uuid"
)

var (
	ErrInsufficientInventory = errors.New("insufficient voucher inventory")
	ErrInvalidRequirement    = errors.New("invalid allocation requirement")
)

type Role string

const (
	RoleReferrer  Role = "referrer"
	RoleNewMember Role = "newMember"
)

func (r Role) String() string {
	return string(r)
}

type Requirement struct {
	Referrer  int
	NewMember int
}

func NewRequirement(referrer, newMember int) (Requirement, error) {
	if referrer < 0 || newMember < 0 || newMember > 1 {
		return Requirement{}, ErrInvalidRequirement
	}
	return Requirement{Referrer: referrer, NewMember: newMember}, nil
}

func (r Requirement) Total() int {
	return r.Referrer + r.NewMember
}

// InsufficientInventoryError matches ErrInsufficientInventory via errors.Is.
type InsufficientInventoryError struct {
	Required int
	Capacity int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient voucher inventory: required %d, available %d", e.Required, e.Capacity)
}

func (e *InsufficientInventoryError) Is(target error) bool {
	return target == ErrInsufficientInventory
}

func (e *InsufficientInventoryError) Shortfall() int {
	return e.Required - e.Capacity
}

// Item consumes Units from one voucher for one recipient. Single-use items
// always carry exactly one unit.
type Item struct {
	VoucherID uuid.UUID
	Code      string
	Units     int
	Kind      voucher.Kind
	Recipient Role
}

type Plan struct {
	Items []Item
}

// CodesFor repeats a code once per granted unit.
func (p *Plan) CodesFor(role Role) []string {
	var codes []string
	for _, it := range p.Items {
		if it.Recipient != role {
			continue
		}
		for range it.Units {
			codes = append(codes, it.Code)
		}
	}
	return codes
}

func (p *Plan) Total() int {
	n := 0
	for _, it := range p.Items {
		n += it.Units
	}
	return n
}
