//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"referral-rewards/internal/handler/middleware"
	"referral-rewards/internal/pkg/config"
	"referral-rewards/internal/pkg/jwt"
	"referral-rewards/tests/common/authtest"
	"referral-rewards/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig().Admin
	svc := jwt.NewService(cfg.JWTSecret, 0)
	auth := middleware.NewAuthMiddleware(svc, cfg.UserIDs)

	r := gin.New()
	whoami := func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "admin": middleware.IsAdmin(c)})
	}
	r.GET("/me", auth.RequireAuth(), whoami)
	r.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), whoami)
	r.GET("/admin-without-auth", auth.RequireAdmin(), whoami)

	return r, authtest.NewJWTHelper(cfg)
}

type whoamiBody struct {
	UserID string `json:"userId"`
	Admin  bool   `json:"admin"`
}

func TestRequireAuth(t *testing.T) {
	router, tokens := newAuthRouter(t)

	t.Run("valid token sets user context", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tokens.GenerateToken(t, "user-1"))

		var body whoamiBody
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, whoamiBody{UserID: "user-1"}, body)
	})

	t.Run("admin allow-list marks administrators", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tokens.AdminToken(t))

		var body whoamiBody
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, whoamiBody{UserID: "admin-1", Admin: true}, body)
	})

	tests := []struct {
		name        string
		header      string
		expectedMsg string
	}{
		{name: "missing header", header: "", expectedMsg: "Access token required"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", expectedMsg: "Access token required"},
		{name: "empty bearer", header: "Bearer   ", expectedMsg: "Access token required"},
		{name: "garbage token", header: "Bearer not-a-jwt", expectedMsg: "Invalid or expired token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/me", nil, headers)
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, tt.expectedMsg)
		})
	}

	t.Run("expired token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tokens.CreateExpiredToken(t, "user-1"))
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		foreign, err := jwt.NewService("other-secret", 0).GenerateToken("user-1")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, foreign)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireAdmin(t *testing.T) {
	router, tokens := newAuthRouter(t)

	t.Run("administrator passes", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, tokens.AdminToken(t))
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, tokens.GenerateToken(t, "user-1"))
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Administrator access required")
	})

	t.Run("misconfigured chain without auth", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin-without-auth", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestNewAuthMiddleware_CopiesAllowList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig().Admin
	admins := []string{"admin-1"}
	auth := middleware.NewAuthMiddleware(jwt.NewService(cfg.JWTSecret, 0), admins)
	admins[0] = "user-1"

	r := gin.New()
	r.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	token := authtest.NewJWTHelper(cfg).GenerateToken(t, "user-1")
	rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
