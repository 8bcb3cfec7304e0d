package worker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"referral-rewards/internal/pkg/config"
	"referral-rewards/internal/usecase/queries"
	"referral-rewards/internal/usecase/shared"

	"github.com/go-co-op/gocron/v2"
)

type CapacityGauge interface {
	SetInventoryCapacity(multiUseRemaining, singleUseAvailable int64)
}

// InventoryWatcher periodically publishes allocatable capacity and warns
// admins before joins start failing for lack of vouchers. Admins hear about a
// low stretch once; the alert re-arms when capacity is back at the watermark.
type InventoryWatcher struct {
	vouchers  queries.VoucherQueries
	notifier  shared.Notifier
	gauge     CapacityGauge
	watermark int64
	interval  time.Duration
	scheduler gocron.Scheduler
	alerted   atomic.Bool
}

func NewInventoryWatcher(vouchers queries.VoucherQueries, notifier shared.Notifier, gauge CapacityGauge, cfg config.InventoryConfig) *InventoryWatcher {
	return &InventoryWatcher{
		vouchers:  vouchers,
		notifier:  notifier,
		gauge:     gauge,
		watermark: int64(cfg.LowWatermark),
		interval:  cfg.CheckInterval,
	}
}

func (w *InventoryWatcher) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), w.interval)
			defer cancel()
			if err := w.Check(ctx); err != nil {
				slog.Error("inventory check failed", "error", err.Error())
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return err
	}
	sched.Start()
	w.scheduler = sched
	slog.Info("inventory watcher started", "interval", w.interval.String(), "low_watermark", w.watermark)
	return nil
}

func (w *InventoryWatcher) Stop() error {
	if w.scheduler == nil {
		return nil
	}
	return w.scheduler.Shutdown()
}

// Check runs one observation; exported so the job body is testable without a scheduler.
func (w *InventoryWatcher) Check(ctx context.Context) error {
	capacity, err := w.vouchers.Capacity(ctx)
	if err != nil {
		return err
	}
	if w.gauge != nil {
		w.gauge.SetInventoryCapacity(capacity.MultiUseRemaining, capacity.SingleUseAvailable)
	}

	total := capacity.Total()
	if total >= w.watermark {
		if w.alerted.CompareAndSwap(true, false) {
			slog.Info("voucher inventory recovered", "capacity", total, "low_watermark", w.watermark)
		}
		return nil
	}
	if !w.alerted.CompareAndSwap(false, true) {
		slog.Debug("voucher inventory still below watermark", "capacity", total, "low_watermark", w.watermark)
		return nil
	}
	slog.Warn("voucher inventory below watermark", "capacity", total, "low_watermark", w.watermark)
	w.notifier.AlertAdmins(ctx, shared.InventoryAlert{
		Required: int(w.watermark),
		Capacity: int(total),
	})
	return nil
}
