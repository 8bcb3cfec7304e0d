package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"referral-rewards/internal/handler/api"
	"referral-rewards/internal/handler/middleware"
	"referral-rewards/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Join    *api.JoinHandler
	Voucher *api.VoucherHandler
	Ledger  *api.LedgerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware, metricsHandler http.Handler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, handlers, authMiddleware, metricsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, metricsHandler http.Handler) {
	engine.GET("/health", healthCheck)
	if metricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(metricsHandler))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		events := apiGroup.Group("/events")
		events.Use(middleware.RequireWebhookToken(cfg.Admin.JoinWebhookToken))
		addRoutes(events, []route{
			{Method: http.MethodPost, Path: "/join", Handler: h.Join.HandleJoin},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/vouchers", Handler: h.Voucher.Add},
				{Method: http.MethodGet, Path: "/vouchers", Handler: h.Voucher.List},
				{Method: http.MethodGet, Path: "/vouchers/capacity", Handler: h.Voucher.Capacity},
				{Method: http.MethodGet, Path: "/ledger/:groupId/:memberId", Handler: h.Ledger.Get},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "/:userId/vouchers", Handler: h.Voucher.ListByUser},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

func NewHandlers(join *api.JoinHandler, voucher *api.VoucherHandler, ledger *api.LedgerHandler) Handlers {
	return Handlers{Join: join, Voucher: voucher, Ledger: ledger}
}
