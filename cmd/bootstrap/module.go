package bootstrap

import (
	"referral-rewards/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
