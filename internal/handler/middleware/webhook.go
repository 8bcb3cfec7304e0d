package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const WebhookTokenHeader = "X-Webhook-Token"

// RequireWebhookToken authenticates the messaging platform's join callbacks
// with a shared secret.
func RequireWebhookToken(secret string) gin.HandlerFunc {
	expected := []byte(secret)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(WebhookTokenHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			slog.Warn("rejected join webhook", "client_ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid webhook token"},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
