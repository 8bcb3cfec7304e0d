package bootstrap

import (
	"net/http"

	"referral-rewards/internal/infra/metrics"
	"referral-rewards/internal/infra/notify"
	"referral-rewards/internal/usecase/commands"
	"referral-rewards/internal/worker"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewCollector,
		func(c *metrics.Collector) commands.RewardMetrics { return c },
		func(c *metrics.Collector) notify.DeliveryMetrics { return c },
		func(c *metrics.Collector) worker.CapacityGauge { return c },
		func(c *metrics.Collector) http.Handler { return c.Handler() },
	),
)
