package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tutorlink/internal/domain/user"
	"tutorlink/internal/handler/api"
	"tutorlink/internal/handler/middleware"
	"tutorlink/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	tutoryHandler *api.TutoryHandler,
	orderHandler *api.OrderHandler,
	reviewHandler *api.ReviewHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, tutoryHandler, orderHandler, reviewHandler, notificationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	tutoryHandler *api.TutoryHandler,
	orderHandler *api.OrderHandler,
	reviewHandler *api.ReviewHandler,
	notificationHandler *api.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		apiGroup.GET("/subjects", tutoryHandler.Subjects)

		tutories := apiGroup.Group("/tutories")
		{
			addRoutes(tutories, []route{
				{Method: http.MethodGet, Path: "", Handler: tutoryHandler.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: tutoryHandler.GetByID},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: tutoryHandler.Availability},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: tutoryHandler.Reviews},
			})

			owned := tutories.Group("")
			owned.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleTutor))
			addRoutes(owned, []route{
				{Method: http.MethodPost, Path: "", Handler: tutoryHandler.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: tutoryHandler.Update},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.Create,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleLearner)}},
				{Method: http.MethodGet, Path: "/me", Handler: orderHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetByID},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: orderHandler.Accept,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleTutor)}},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: orderHandler.Decline,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleTutor)}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: orderHandler.Cancel},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleLearner))
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: reviewHandler.Create},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "/me", Handler: notificationHandler.ListMine},
				{Method: http.MethodGet, Path: "/unread-count", Handler: notificationHandler.UnreadCount},
				{Method: http.MethodPost, Path: "/:id/read", Handler: notificationHandler.MarkRead},
			})
		}

		devices := apiGroup.Group("/devices")
		devices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(devices, []route{
				{Method: http.MethodPost, Path: "", Handler: notificationHandler.RegisterDevice},
				{Method: http.MethodDelete, Path: "", Handler: notificationHandler.UnregisterDevice},
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
