package allocation

import (
	"cmp"
	"slices"

	"referral-rewards/internal/domain/voucher"
)

// Allocator plans which vouchers satisfy a requirement without mutating
// anything. Multi-use capacity is drained before any single-use voucher is
// touched; within each tier vouchers are taken oldest-added first, ties
// broken by code.
type Allocator struct{}

func NewAllocator() *Allocator {
	return &Allocator{}
}

type slot struct {
	v        *voucher.Voucher
	capacity int
}

func Capacity(pool []*voucher.Voucher) int {
	total := 0
	for _, v := range pool {
		total += v.Capacity()
	}
	return total
}

func (a *Allocator) Allocate(pool []*voucher.Voucher, req Requirement) (*Plan, error) {
	if _, err := NewRequirement(req.Referrer, req.NewMember); err != nil {
		return nil, err
	}

	capacity := Capacity(pool)
	if capacity < req.Total() {
		return nil, &InsufficientInventoryError{Required: req.Total(), Capacity: capacity}
	}

	multi, single := partition(pool)
	plan := &Plan{}
	fill(plan, multi, single, RoleReferrer, req.Referrer)
	fill(plan, multi, single, RoleNewMember, req.NewMember)
	return plan, nil
}

func partition(pool []*voucher.Voucher) (multi, single []*slot) {
	for _, v := range pool {
		if !v.IsAvailable() {
			continue
		}
		s := &slot{v: v, capacity: v.Capacity()}
		if v.IsMultiUse() {
			multi = append(multi, s)
		} else {
			single = append(single, s)
		}
	}
	slices.SortStableFunc(multi, bySeniority)
	slices.SortStableFunc(single, bySeniority)
	return multi, single
}

func bySeniority(a, b *slot) int {
	if c := a.v.AddedAt().Compare(b.v.AddedAt()); c != 0 {
		return c
	}
	return cmp.Compare(a.v.Code(), b.v.Code())
}

// fill reserves units on the shared slots so a later role never sees a unit
// already taken by an earlier one.
func fill(plan *Plan, multi, single []*slot, role Role, need int) {
	for _, s := range multi {
		if need == 0 {
			return
		}
		if s.capacity == 0 {
			continue
		}
		take := min(s.capacity, need)
		s.capacity -= take
		need -= take
		plan.Items = append(plan.Items, Item{
			VoucherID: s.v.ID(),
			Code:      s.v.Code().String(),
			Units:     take,
			Kind:      voucher.KindMultiUse,
			Recipient: role,
		})
	}
	for _, s := range single {
		if need == 0 {
			return
		}
		if s.capacity == 0 {
			continue
		}
		s.capacity = 0
		need--
		plan.Items = append(plan.Items, Item{
			VoucherID: s.v.ID(),
			Code:      s.v.Code().String(),
			Units:     1,
			Kind:      voucher.KindSingleUse,
			Recipient: role,
		})
	}
}
