package components

import (
	"context"

	"referral-rewards/internal/pkg/config"
	"referral-rewards/internal/usecase/queries"
	"referral-rewards/internal/usecase/shared"
	"referral-rewards/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewInventoryWatcher,
	),
	fx.Invoke(registerInventoryWatcher),
)

func NewInventoryWatcher(vouchers queries.VoucherQueries, notifier shared.Notifier, gauge worker.CapacityGauge, cfg config.Config) *worker.InventoryWatcher {
	return worker.NewInventoryWatcher(vouchers, notifier, gauge, cfg.Inventory)
}

func registerInventoryWatcher(lc fx.Lifecycle, w *worker.InventoryWatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return w.Start()
		},
		OnStop: func(_ context.Context) error {
			return w.Stop()
		},
	})
}
