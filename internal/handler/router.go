package handler

import (
	"net/http"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/handler/api"
	"facility-parking/internal/handler/middleware"
	"facility-parking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Parking *api.ParkingHandler
	Receipt *api.ReceiptHandler
	Auth    *api.AuthHandler
}

func NewHandlers(parking *api.ParkingHandler, receipt *api.ReceiptHandler, auth *api.AuthHandler) Handlers {
	return Handlers{Parking: parking, Receipt: receipt, Auth: auth}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		parking := apiGroup.Group("/parking")
		addRoutes(parking, []route{
			{Method: http.MethodPost, Path: "/quote", Handler: h.Parking.Quote},
			{Method: http.MethodPost, Path: "/quote/manual", Handler: h.Parking.QuoteManual},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/receipts", Handler: h.Receipt.Issue},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		adminReceipts := apiGroup.Group("/admin/receipts")
		adminReceipts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(adminReceipts, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Receipt.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Receipt.Get},
				{
					Method:  http.MethodDelete,
					Path:    "/:id",
					Handler: h.Receipt.Delete,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRole(admin.RoleSuperAdmin)},
				},
			})
		}
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
