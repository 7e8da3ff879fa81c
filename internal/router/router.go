package router

import (
	"time"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/config"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/handler"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/infra"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/middleware"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/repository"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/service"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	routeRepo := repository.NewRouteAssignmentRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	stockRepo := repository.NewStockRepository(db)
	resetRepo := repository.NewResetRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	storeSvc := service.NewStoreService(storeRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo, routeRepo, userRepo)
	stockSvc := service.NewStockService(stockRepo)

	// Reset notifications go through the email queue so SMTP hiccups retry
	// in the worker pool instead of failing the maintenance request.
	resetSvc := service.NewResetService(resetRepo, worker.NewQueuedMailer(dispatcher, mailer.Configured()), cfg.AdminEmail)
	transactionSvc := service.NewTransactionService(transactionRepo, stockRepo, storeRepo, vehicleRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	storesH := handler.NewStoresHandler(storeSvc)
	vehiclesH := handler.NewVehiclesHandler(vehicleSvc)
	transactionsH := handler.NewTransactionsHandler(transactionSvc)
	stocksH := handler.NewStocksHandler(stockSvc)
	adminH := handler.NewAdminHandler(resetSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Entry routing — send visitors to the right portal
	r.GET("/", handler.RedirectToApp)
	r.GET("/app", handler.RedirectToApp)
	r.GET("/admin", handler.RedirectToAdmin)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		adminRoles := middleware.RequireRole(model.RoleSuperAdmin, model.RoleAdmin)
		allRoles := middleware.RequireRole(model.RoleSuperAdmin, model.RoleAdmin, model.RoleField)

		// Transactions — field users record, everyone lists (scoped by role)
		v1.POST("/transactions", middleware.RequireRole(model.RoleField), transactionsH.RecordPickup)
		v1.GET("/transactions", allRoles, transactionsH.List)

		// Vehicles — field users read (session vehicle selection), admins write
		v1.GET("/vehicles", allRoles, vehiclesH.List)
		vehicles := v1.Group("/vehicles", adminRoles)
		{
			vehicles.POST("", vehiclesH.Create)
			vehicles.PUT("/:id", vehiclesH.Update)
			vehicles.DELETE("/:id", vehiclesH.Deactivate)
		}

		// Stores — field users read (pickup destination), admins write
		v1.GET("/stores", allRoles, storesH.List)
		stores := v1.Group("/stores", adminRoles)
		{
			stores.POST("", storesH.Create)
			stores.PUT("/:id", storesH.Update)
			stores.DELETE("/:id", storesH.Deactivate)
		}

		// Route assignments
		routes := v1.Group("/routes", adminRoles)
		{
			routes.POST("", vehiclesH.AssignRoute)
			routes.GET("", vehiclesH.ListRoutes)
			routes.DELETE("/:id", vehiclesH.UnassignRoute)
		}

		// Stock ledgers
		v1.GET("/stocks/me", middleware.RequireRole(model.RoleField), stocksH.MyStock)
		stocks := v1.Group("/stocks", adminRoles)
		{
			stocks.GET("/users/:id", stocksH.UserStock)
			stocks.GET("/warehouse", stocksH.WarehouseStock)
			stocks.POST("/deposit", stocksH.Deposit)
		}

		// User management
		users := v1.Group("/users", adminRoles)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}

		// Maintenance — irreversible, highest role only
		v1.POST("/admin/reset", middleware.RequireRole(model.RoleSuperAdmin), adminH.Reset)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
