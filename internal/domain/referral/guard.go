package referral

import "context"

type LedgerChecker interface {
	LedgerExists(ctx context.Context, groupID, newMemberID string) (bool, error)
}

// Guard short-circuits joins that can never be rewarded. It is not the
// correctness mechanism against duplicates; the commit re-checks the ledger.
type Guard struct {
	policy *Policy
	ledger LedgerChecker
}

func NewGuard(policy *Policy, ledger LedgerChecker) *Guard {
	return &Guard{policy: policy, ledger: ledger}
}

func (g *Guard) Policy() *Policy {
	return g.policy
}

func (g *Guard) Evaluate(ctx context.Context, ev JoinEvent) (Decision, error) {
	if !g.policy.IsEnrolled(ev.GroupID) {
		return Ineligible(ReasonGroupNotEnrolled), nil
	}

	referrerID, ok := ev.ReferrerID()
	if !ok {
		return Ineligible(ReasonSelfOrNoReferral), nil
	}

	exists, err := g.ledger.LedgerExists(ctx, ev.GroupID, ev.NewMemberID)
	if err != nil {
		return Decision{}, err
	}
	if exists {
		return Ineligible(ReasonAlreadyRewarded), nil
	}

	return Eligible(referrerID), nil
}
