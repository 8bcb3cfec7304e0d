package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"referral-rewards/internal/domain/allocation"
	"referral-rewards/internal/domain/referral"
	"referral-rewards/internal/domain/voucher"
	"referral-rewards/internal/infra"
	"referral-rewards/internal/pkg/clock"
	"referral-rewards/internal/pkg/errs"
	"referral-rewards/internal/usecase/shared"
)

// A conflicting commit is re-planned once against fresh inventory.
const maxCommitAttempts = 2

type JoinOutcome string

const (
	OutcomeRewarded              JoinOutcome = "rewarded"
	OutcomeIneligible            JoinOutcome = "ineligible"
	OutcomeInsufficientInventory JoinOutcome = "insufficient-inventory"
	OutcomeUnfulfilled           JoinOutcome = "unfulfilled"
)

func (o JoinOutcome) String() string {
	return string(o)
}

type JoinRequest struct {
	GroupID     string
	NewMemberID string
	ReferrerID  *string
}

type JoinResult struct {
	Outcome   JoinOutcome
	Reason    referral.Reason
	Shortfall int
	Attempts  int
	Entry     *referral.LedgerEntry
	Grants    []shared.GrantNotice
}

//go:generate mockgen -source=reward.go -destination=../../tests/mock/commands/reward_mock.go -package=commandsmock

type RewardMetrics interface {
	ObserveJoin(outcome, reason string)
	IncCommitConflict()
}

type RewardCommands interface {
	HandleJoin(ctx context.Context, req JoinRequest) (*JoinResult, error)
}

type rewardUseCaseImpl struct {
	uow       shared.UnitOfWork
	guard     *referral.Guard
	allocator *allocation.Allocator
	notifier  shared.Notifier
	metrics   RewardMetrics
	clock     clock.Clock
}

func NewRewardUseCase(
	uow shared.UnitOfWork,
	policy *referral.Policy,
	notifier shared.Notifier,
	metrics RewardMetrics,
	clk clock.Clock,
) RewardCommands {
	return &rewardUseCaseImpl{
		uow:       uow,
		guard:     referral.NewGuard(policy, uow.CommandReads()),
		allocator: allocation.NewAllocator(),
		notifier:  notifier,
		metrics:   metrics,
		clock:     clk,
	}
}

func (uc *rewardUseCaseImpl) HandleJoin(ctx context.Context, req JoinRequest) (*JoinResult, error) {
	ev, err := referral.NewJoinEvent(req.GroupID, req.NewMemberID, req.ReferrerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidJoinEvent)
	}
	logger := slog.With("group_id", ev.GroupID, "new_member_id", ev.NewMemberID)

	decision, err := uc.guard.Evaluate(ctx, ev)
	if err != nil {
		return nil, uc.storeFailure(logger, "eligibility check failed", err)
	}
	if !decision.Eligible {
		if decision.Reason == referral.ReasonSelfOrNoReferral && uc.guard.Policy().RecordUnreferredJoins() {
			if err := uc.recordUnreferred(ctx, ev); err != nil {
				return nil, uc.storeFailure(logger, "failed to record unreferred join", err)
			}
		}
		return uc.finish(logger, &JoinResult{Outcome: OutcomeIneligible, Reason: decision.Reason}), nil
	}

	logger = logger.With("referrer_id", decision.ReferrerID)
	policy := uc.guard.Policy()
	requirement, err := allocation.NewRequirement(policy.ReferrerVouchers(), policy.NewMemberVouchers())
	if err != nil {
		return nil, errs.Wrap(err, "reward policy")
	}

	for attempt := 1; attempt <= maxCommitAttempts; attempt++ {
		plan, err := uc.plan(ctx, requirement)
		if err != nil {
			var insufficient *allocation.InsufficientInventoryError
			if errors.As(err, &insufficient) {
				uc.notifier.AlertAdmins(ctx, shared.InventoryAlert{
					Required:    insufficient.Required,
					Capacity:    insufficient.Capacity,
					GroupID:     ev.GroupID,
					NewMemberID: ev.NewMemberID,
				})
				return uc.finish(logger, &JoinResult{
					Outcome:   OutcomeInsufficientInventory,
					Shortfall: insufficient.Shortfall(),
					Attempts:  attempt,
				}), nil
			}
			return nil, uc.storeFailure(logger, "failed to plan allocation", err)
		}

		entry, err := uc.commit(ctx, ev, decision.ReferrerID, plan)
		switch {
		case err == nil:
			grants := grantNotices(ev, decision.ReferrerID, plan)
			uc.notifier.NotifyGrants(ctx, grants)
			return uc.finish(logger, &JoinResult{
				Outcome:  OutcomeRewarded,
				Attempts: attempt,
				Entry:    entry,
				Grants:   grants,
			}), nil
		case errs.Is(err, errs.ErrAlreadyAdjudicated):
			return uc.finish(logger, &JoinResult{
				Outcome:  OutcomeIneligible,
				Reason:   referral.ReasonAlreadyRewarded,
				Attempts: attempt,
			}), nil
		case errs.Is(err, errs.ErrCommitConflict):
			uc.metrics.IncCommitConflict()
			logger.Warn("commit conflict, re-planning", "attempt", attempt, "error", err.Error())
		default:
			return nil, uc.storeFailure(logger, "failed to commit allocation", err)
		}
	}

	return uc.finish(logger, &JoinResult{Outcome: OutcomeUnfulfilled, Attempts: maxCommitAttempts}), nil
}

func (uc *rewardUseCaseImpl) plan(ctx context.Context, req allocation.Requirement) (*allocation.Plan, error) {
	snapshots, err := uc.uow.CommandReads().AvailableVouchers(ctx)
	if err != nil {
		return nil, err
	}
	pool := make([]*voucher.Voucher, 0, len(snapshots))
	for _, s := range snapshots {
		v, err := s.ToDomain()
		if err != nil {
			return nil, errs.Wrapf(err, "voucher %s", s.Code)
		}
		pool = append(pool, v)
	}
	return uc.allocator.Allocate(pool, req)
}

// commit applies every plan item and the ledger entry in one transaction.
// Any failed precondition rolls the whole unit back.
func (uc *rewardUseCaseImpl) commit(ctx context.Context, ev referral.JoinEvent, referrerID string, plan *allocation.Plan) (*referral.LedgerEntry, error) {
	var committed *referral.LedgerEntry
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		committed = nil

		exists, err := tx.Reads().LedgerExists(ctx, ev.GroupID, ev.NewMemberID)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrAlreadyAdjudicated
		}

		now := uc.clock.Now()
		for _, item := range plan.Items {
			if err := applyItem(ctx, tx, item, recipientOf(item.Recipient, ev, referrerID), now); err != nil {
				return err
			}
		}

		entry, err := referral.NewRewardEntry(ev, plan.CodesFor(allocation.RoleReferrer), firstCode(plan.CodesFor(allocation.RoleNewMember)), now)
		if err != nil {
			return err
		}
		inserted, err := tx.Ledger().Insert(ctx, tx.DB(), entry)
		if err != nil {
			return err
		}
		if !inserted {
			return errs.ErrAlreadyAdjudicated
		}
		committed = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}

func applyItem(ctx context.Context, tx shared.Tx, item allocation.Item, recipient string, now time.Time) error {
	var err error
	switch item.Kind {
	case voucher.KindMultiUse:
		err = tx.Vouchers().ConsumeUses(ctx, tx.DB(), item.VoucherID, item.Units)
	default:
		err = tx.Vouchers().AssignOwner(ctx, tx.DB(), item.VoucherID, recipient, now)
	}
	if infra.IsKind(err, infra.KindPreconditionFailed) {
		return errs.Mark(err, errs.ErrCommitConflict)
	}
	return err
}

func (uc *rewardUseCaseImpl) recordUnreferred(ctx context.Context, ev referral.JoinEvent) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Ledger().Insert(ctx, tx.DB(), referral.NewUnreferredMarker(ev, uc.clock.Now()))
		return err
	})
}

func (uc *rewardUseCaseImpl) finish(logger *slog.Logger, res *JoinResult) *JoinResult {
	uc.metrics.ObserveJoin(res.Outcome.String(), res.Reason.String())

	attrs := []any{"outcome", res.Outcome.String()}
	if res.Reason != "" {
		attrs = append(attrs, "reason", res.Reason.String())
	}
	switch res.Outcome {
	case OutcomeRewarded:
		logger.Info("join rewarded", append(attrs, "attempt", res.Attempts)...)
	case OutcomeInsufficientInventory:
		logger.Warn("join not rewarded: inventory exhausted", append(attrs, "shortfall", res.Shortfall)...)
	case OutcomeUnfulfilled:
		logger.Warn("join not rewarded: repeated commit conflicts", attrs...)
	default:
		logger.Info("join not eligible", attrs...)
	}
	return res
}

func (uc *rewardUseCaseImpl) storeFailure(logger *slog.Logger, msg string, err error) error {
	uc.metrics.ObserveJoin("failed", "")
	logger.Error(msg, "error", err.Error())
	return errs.Mark(errs.Wrap(err, msg), errs.ErrStoreUnavailable)
}

func recipientOf(role allocation.Role, ev referral.JoinEvent, referrerID string) string {
	if role == allocation.RoleReferrer {
		return referrerID
	}
	return ev.NewMemberID
}

func grantNotices(ev referral.JoinEvent, referrerID string, plan *allocation.Plan) []shared.GrantNotice {
	var notices []shared.GrantNotice
	if codes := plan.CodesFor(allocation.RoleReferrer); len(codes) > 0 {
		notices = append(notices, shared.GrantNotice{
			RecipientID:         referrerID,
			Role:                allocation.RoleReferrer,
			GrantedVoucherCodes: codes,
			GroupID:             ev.GroupID,
		})
	}
	if codes := plan.CodesFor(allocation.RoleNewMember); len(codes) > 0 {
		notices = append(notices, shared.GrantNotice{
			RecipientID:         ev.NewMemberID,
			Role:                allocation.RoleNewMember,
			GrantedVoucherCodes: codes,
			GroupID:             ev.GroupID,
		})
	}
	return notices
}

func firstCode(codes []string) *string {
	if len(codes) == 0 {
		return nil
	}
	return &codes[0]
}
