package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"referral-rewards/internal/domain/voucher"
	"referral-rewards/internal/pkg/clock"
	"referral-rewards/internal/pkg/errs"
	"referral-rewards/internal/usecase/shared"
)

// MaxVoucherBatch bounds one add-inventory call so it fits one transaction.
const MaxVoucherBatch = 1000

type AddVouchersInput struct {
	Codes         []string
	MultiUse      bool
	RemainingUses int
	AddedBy       string
}

// AddVouchersResult lists codes in input order. A code repeated in the batch
// is inserted once and every later occurrence is reported as existing.
type AddVouchersResult struct {
	Inserted []string
	Existing []string
}

//go:generate mockgen -source=inventory.go -destination=../../tests/mock/commands/inventory_mock.go -package=commandsmock

type InventoryCommands interface {
	AddVouchers(ctx context.Context, in AddVouchersInput) (*AddVouchersResult, error)
}

type inventoryUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewInventoryUseCase(uow shared.UnitOfWork, clk clock.Clock) InventoryCommands {
	return &inventoryUseCaseImpl{uow: uow, clock: clk}
}

func (uc *inventoryUseCaseImpl) AddVouchers(ctx context.Context, in AddVouchersInput) (*AddVouchersResult, error) {
	codes, err := validateBatch(in)
	if err != nil {
		return nil, err
	}

	var result *AddVouchersResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = &AddVouchersResult{}
		now := uc.clock.Now()
		for _, code := range codes {
			v, derr := newVoucher(code, in, now)
			if derr != nil {
				return derr
			}
			inserted, derr := tx.Vouchers().Insert(ctx, tx.DB(), v)
			if derr != nil {
				return derr
			}
			if inserted {
				result.Inserted = append(result.Inserted, code.String())
			} else {
				result.Existing = append(result.Existing, code.String())
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to add vouchers", "added_by", in.AddedBy, "count", len(codes), "error", err.Error())
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	slog.Info("vouchers added",
		"added_by", in.AddedBy,
		"multi_use", in.MultiUse,
		"inserted", len(result.Inserted),
		"existing", len(result.Existing))
	return result, nil
}

func validateBatch(in AddVouchersInput) ([]voucher.Code, error) {
	if strings.TrimSpace(in.AddedBy) == "" {
		return nil, errs.Wrap(errs.ErrInvalidVoucherBatch, "added by is required")
	}
	if len(in.Codes) == 0 {
		return nil, errs.Wrap(errs.ErrInvalidVoucherBatch, "no codes given")
	}
	if len(in.Codes) > MaxVoucherBatch {
		return nil, errs.Wrapf(errs.ErrInvalidVoucherBatch, "at most %d codes per batch", MaxVoucherBatch)
	}
	if in.MultiUse && in.RemainingUses < 1 {
		return nil, errs.Wrap(errs.ErrInvalidVoucherBatch, "multi-use vouchers need at least one use")
	}
	if in.RemainingUses > voucher.MaxUses {
		return nil, errs.Wrapf(errs.ErrInvalidVoucherBatch, "use count exceeds %d", voucher.MaxUses)
	}
	if !in.MultiUse && in.RemainingUses != 0 {
		return nil, errs.Wrap(errs.ErrInvalidVoucherBatch, "single-use vouchers take no use count")
	}

	codes := make([]voucher.Code, 0, len(in.Codes))
	for i, raw := range in.Codes {
		code, err := voucher.NewCode(raw)
		if err != nil {
			return nil, errs.Wrapf(errs.ErrInvalidVoucherBatch, "code #%d %q: %v", i+1, raw, err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func newVoucher(code voucher.Code, in AddVouchersInput, now time.Time) (*voucher.Voucher, error) {
	if in.MultiUse {
		return voucher.NewMultiUse(code, in.RemainingUses, in.AddedBy, now)
	}
	return voucher.NewSingleUse(code, in.AddedBy, now), nil
}
