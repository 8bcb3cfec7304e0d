package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"referral-rewards/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware serves the admin console. The join webhook is called
// server to server and never needs CORS.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  withHeader(cfg.AllowHeaders, "Authorization"),
		ExposeHeaders: cfg.ExposeHeaders,
		MaxAge:        cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		// browsers reject credentials on a wildcard origin
		corsCfg.AllowAllOrigins = true
		if cfg.AllowCredentials {
			slog.Warn("CORS credentials disabled because all origins are allowed")
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowCredentials = cfg.AllowCredentials
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}

func withHeader(headers []string, header string) []string {
	for _, h := range headers {
		if strings.EqualFold(h, header) {
			return headers
		}
	}
	return append(slices.Clone(headers), header)
}
