// Package dependency wires repositories, services, use cases, controllers
// and middleware into a ready-to-serve router.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mother-homes/backend/config"
	"github.com/mother-homes/backend/internal/application/usecase/auth"
	"github.com/mother-homes/backend/internal/application/usecase/expense"
	"github.com/mother-homes/backend/internal/application/usecase/flat"
	"github.com/mother-homes/backend/internal/application/usecase/report"
	"github.com/mother-homes/backend/internal/application/usecase/tenant"
	"github.com/mother-homes/backend/internal/infra/server/router"
	"github.com/mother-homes/backend/internal/integration/adapters"
	"github.com/mother-homes/backend/internal/integration/entrypoint/controller"
	"github.com/mother-homes/backend/internal/integration/entrypoint/middleware"
	"github.com/mother-homes/backend/internal/integration/persistence"
)

// Injector holds the fully wired application graph.
type Injector struct {
	Config *config.Config
	Router *router.Router
}

// NewInjector builds the application graph on top of the given database and
// redis connections. A nil dbHealthChecker reports the database as down.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	dbHealthChecker func() bool,
) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	flatRepo := persistence.NewFlatRepository(db)
	tenantRepo := persistence.NewTenantRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)

	// Services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	pdfRenderer := adapters.NewPDFRenderer()

	// Use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	listFlatsUseCase := flat.NewListFlatsUseCase(flatRepo)
	createFlatUseCase := flat.NewCreateFlatUseCase(flatRepo)
	getFlatUseCase := flat.NewGetFlatUseCase(flatRepo)
	updateFlatUseCase := flat.NewUpdateFlatUseCase(flatRepo)
	deleteFlatUseCase := flat.NewDeleteFlatUseCase(flatRepo, tenantRepo, expenseRepo)

	listTenantsUseCase := tenant.NewListTenantsUseCase(tenantRepo)
	createTenantUseCase := tenant.NewCreateTenantUseCase(tenantRepo, flatRepo)
	updateTenantUseCase := tenant.NewUpdateTenantUseCase(tenantRepo, flatRepo)
	deleteTenantUseCase := tenant.NewDeleteTenantUseCase(tenantRepo)

	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, flatRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	getSummaryUseCase := report.NewGetSummaryUseCase(flatRepo, tenantRepo, expenseRepo)
	exportReportUseCase := report.NewExportReportUseCase(getSummaryUseCase, pdfRenderer)

	// Controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshUseCase, logoutUseCase)
	flatController := controller.NewFlatController(listFlatsUseCase, createFlatUseCase, getFlatUseCase, updateFlatUseCase, deleteFlatUseCase)
	tenantController := controller.NewTenantController(listTenantsUseCase, createTenantUseCase, updateTenantUseCase, deleteTenantUseCase)
	expenseController := controller.NewExpenseController(listExpensesUseCase, createExpenseUseCase, updateExpenseUseCase, deleteExpenseUseCase)
	dashboardController := controller.NewDashboardController(getSummaryUseCase, exportReportUseCase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	var loginRateLimiter *middleware.RateLimiter
	if redisClient != nil {
		if cfg.Server.Environment == "test" {
			// Integration suites hammer the login endpoint; keep the
			// limiter wired but effectively open.
			loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, time.Minute)
		} else {
			loginRateLimiter = middleware.NewRateLimiter(redisClient)
		}
	}

	apiRouter := router.NewRouter(
		healthController,
		authController,
		flatController,
		tenantController,
		expenseController,
		dashboardController,
		authMiddleware,
		loginRateLimiter,
	)

	return &Injector{
		Config: cfg,
		Router: apiRouter,
	}
}
