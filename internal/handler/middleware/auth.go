package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"referral-rewards/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
	adminIDs       []string
}

const (
	ctxUserIDKey  = "user_id"
	ctxIsAdminKey = "is_admin"
)

// NewAuthMiddleware copies adminIDs; the allow-list is fixed for the process lifetime.
func NewAuthMiddleware(tokenValidator TokenValidator, adminIDs []string) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		adminIDs:       slices.Clone(adminIDs),
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		userID := claims.UserID()
		isAdmin := slices.Contains(m.adminIDs, userID)
		c.Set(ctxUserIDKey, userID)
		c.Set(ctxIsAdminKey, isAdmin)
		c.Set("jwt_claims", map[string]any{
			"user_id": userID,
			"admin":   isAdmin,
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			c.Abort()
			return
		}

		if !IsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Administrator access required"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

func IsAdmin(c *gin.Context) bool {
	v, exists := c.Get(ctxIsAdminKey)
	if !exists {
		return false
	}
	admin, ok := v.(bool)
	return ok && admin
}
