package referral

import (
	"slices"
	"strings"
)

// Policy is built once at startup and never mutated afterwards.
type Policy struct {
	enrolled          map[string]struct{}
	referrerVouchers  int
	newMemberVouchers int
	recordUnreferred  bool
}

func NewPolicy(enrolledGroups []string, referrerVouchers, newMemberVouchers int, recordUnreferred bool) (*Policy, error) {
	if referrerVouchers < 0 || newMemberVouchers < 0 || newMemberVouchers > 1 || referrerVouchers+newMemberVouchers == 0 {
		return nil, ErrInvalidPolicy
	}
	enrolled := make(map[string]struct{}, len(enrolledGroups))
	for _, g := range enrolledGroups {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		enrolled[g] = struct{}{}
	}
	return &Policy{
		enrolled:          enrolled,
		referrerVouchers:  referrerVouchers,
		newMemberVouchers: newMemberVouchers,
		recordUnreferred:  recordUnreferred,
	}, nil
}

func (p *Policy) IsEnrolled(groupID string) bool {
	_, ok := p.enrolled[groupID]
	return ok
}

func (p *Policy) EnrolledGroups() []string {
	groups := make([]string, 0, len(p.enrolled))
	for g := range p.enrolled {
		groups = append(groups, g)
	}
	slices.Sort(groups)
	return groups
}

func (p *Policy) ReferrerVouchers() int       { return p.referrerVouchers }
func (p *Policy) NewMemberVouchers() int      { return p.newMemberVouchers }
func (p *Policy) RecordUnreferredJoins() bool { return p.recordUnreferred }
