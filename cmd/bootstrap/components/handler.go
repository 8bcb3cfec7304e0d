package components

import (
	"referral-rewards/internal/handler"
	"referral-rewards/internal/handler/api"
	"referral-rewards/internal/handler/middleware"
	"referral-rewards/internal/pkg/config"
	"referral-rewards/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewJoinHandler,
		api.NewVoucherHandler,
		api.NewLedgerHandler,
		handler.NewHandlers,
		NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(tokens *jwt.Service, cfg config.Config) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokens, cfg.Admin.UserIDs)
}
