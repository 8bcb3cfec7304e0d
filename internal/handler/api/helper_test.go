//go:build unit

package api_test

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	testAdminID       = "admin-1"
	testWebhookSecret = "webhook-secret"
)

// fakeAuth treats the bearer token as the caller's user id
func fakeAuth(c *gin.Context) {
	userID := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("user_id", userID)
	c.Set("is_admin", userID == testAdminID)
	c.Next()
}
