//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"referral-rewards/internal/pkg/config"
	"referral-rewards/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.AdminConfig
}

func NewJWTHelper(cfg config.AdminConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.JWTDuration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.JWTSecret, duration).GenerateToken(userID)
	require.NoError(t, err)
	return token
}

// AdminToken signs a token for the first configured administrator
func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, h.cfg.UserIDs, "no administrator configured")
	return h.GenerateToken(t, h.cfg.UserIDs[0])
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.JWTSecret, time.Millisecond).GenerateToken(userID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
