// Package router provides HTTP routing configuration.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mother-homes/backend/internal/integration/entrypoint/controller"
	"github.com/mother-homes/backend/internal/integration/entrypoint/middleware"
)

// Router holds the route configuration and controllers.
type Router struct {
	healthController    *controller.HealthController
	authController      *controller.AuthController
	flatController      *controller.FlatController
	tenantController    *controller.TenantController
	expenseController   *controller.ExpenseController
	dashboardController *controller.DashboardController
	authMiddleware      *middleware.AuthMiddleware
	loginRateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new router instance.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	flatController *controller.FlatController,
	tenantController *controller.TenantController,
	expenseController *controller.ExpenseController,
	dashboardController *controller.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
	loginRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		flatController:      flatController,
		tenantController:    tenantController,
		expenseController:   expenseController,
		dashboardController: dashboardController,
		authMiddleware:      authMiddleware,
		loginRateLimiter:    loginRateLimiter,
	}
}

// Setup configures and returns the gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.Default()

	r.setupHealthRoutes(engine)
	r.setupAPIRoutes(engine)

	return engine
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	if r.healthController != nil {
		engine.GET("/health", r.healthController.Check)
	}
}

func (r *Router) setupAPIRoutes(engine *gin.Engine) {
	v1 := engine.Group("/api/v1")

	if r.authController != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			if r.loginRateLimiter != nil {
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			} else {
				auth.POST("/login", r.authController.Login)
			}
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
		}
	}

	if r.authMiddleware == nil {
		return
	}

	if r.flatController != nil {
		flats := v1.Group("/flats")
		flats.Use(r.authMiddleware.Authenticate())
		{
			flats.GET("", r.flatController.List)
			flats.POST("", r.flatController.Create)
			flats.GET("/:id", r.flatController.Get)
			flats.PUT("/:id", r.flatController.Update)
			flats.DELETE("/:id", r.flatController.Delete)
		}
	}

	if r.tenantController != nil {
		tenants := v1.Group("/tenants")
		tenants.Use(r.authMiddleware.Authenticate())
		{
			tenants.GET("", r.tenantController.List)
			tenants.POST("", r.tenantController.Create)
			tenants.PUT("/:id", r.tenantController.Update)
			tenants.DELETE("/:id", r.tenantController.Delete)
		}
	}

	if r.expenseController != nil {
		expenses := v1.Group("/expenses")
		expenses.Use(r.authMiddleware.Authenticate())
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.PUT("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}
	}

	if r.dashboardController != nil {
		reports := v1.Group("")
		reports.Use(r.authMiddleware.Authenticate())
		{
			reports.GET("/dashboard", r.dashboardController.Summary)
			reports.GET("/reports/export", r.dashboardController.ExportReport)
		}
	}
}
