package routes

import (
	"chickenpos/configs"
	"chickenpos/controllers"
	"chickenpos/middlewares"
	"chickenpos/repository"
	"chickenpos/services"
	"chickenpos/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	orderSvc := services.NewOrderService(orderRepo)
	orderSvc.SetEvents(hub)
	queueSvc := services.NewQueueService(orderRepo)
	analyticsSvc := services.NewAnalyticsService(orderRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc, queueSvc, analyticsSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Customer display (public)
	r.GET("/api/queue-stats", orderCtrl.QueueStats)
	r.GET("/ws/orders", hub.Serve)

	// Counter + kitchen (staff)
	api := r.Group("/api", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/orders", orderCtrl.List)
		api.POST("/orders", orderCtrl.Create)
		api.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		api.GET("/analytics", orderCtrl.AnalyticsSummary)
	}
}
