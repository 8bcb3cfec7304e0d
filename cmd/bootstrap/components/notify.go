package components

import (
	"referral-rewards/internal/infra/notify"
	"referral-rewards/internal/pkg/clock"
	"referral-rewards/internal/pkg/config"
	"referral-rewards/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewSender,
		NewNotifier,
	),
)

func NewSender(cfg config.Config) notify.Sender {
	return notify.NewSender(cfg.Notify)
}

func NewNotifier(sender notify.Sender, recorder notify.AttemptRecorder, metrics notify.DeliveryMetrics, cfg config.Config, clk clock.Clock) shared.Notifier {
	return notify.NewDispatcher(sender, recorder, metrics, cfg.Admin.UserIDs, clk)
}
