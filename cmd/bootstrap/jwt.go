package bootstrap

import (
	"fmt"
	"time"

	"referral-rewards/internal/pkg/config"
	"referral-rewards/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService validates admin and member bearer tokens. Tokens are minted
// by the messaging platform's login flow with the shared secret.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.Admin.JWTDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_JWT_DURATION: %w", err)
	}
	return jwt.NewService(cfg.Admin.JWTSecret, duration), nil
}
