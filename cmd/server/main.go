package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	accountingapp "github.com/storeops/backend/internal/application/accounting"
	catalogapp "github.com/storeops/backend/internal/application/catalog"
	identityapp "github.com/storeops/backend/internal/application/identity"
	inventoryapp "github.com/storeops/backend/internal/application/inventory"
	notificationapp "github.com/storeops/backend/internal/application/notification"
	"github.com/storeops/backend/internal/infrastructure/auth"
	"github.com/storeops/backend/internal/infrastructure/cache"
	"github.com/storeops/backend/internal/infrastructure/config"
	"github.com/storeops/backend/internal/infrastructure/logger"
	"github.com/storeops/backend/internal/infrastructure/persistence"
	"github.com/storeops/backend/internal/interfaces/http/handler"
	"github.com/storeops/backend/internal/interfaces/http/middleware"
	"github.com/storeops/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting StoreOps Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected successfully")

	// Initialize repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	settlementRepo := persistence.NewGormSettlementRepository(db.DB)
	accountingRepo := persistence.NewGormAccountingRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)
	roleRepo := persistence.NewGormRoleRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)

	// Initialize application services
	dashboardService := accountingapp.NewDashboardService(
		orderRepo, expenseRepo, settlementRepo, accountingRepo, log)
	auditService := inventoryapp.NewAuditService(auditRepo, log)
	roleService := identityapp.NewRoleService(roleRepo, log)
	productService := catalogapp.NewProductService(productRepo, log)
	unreadCounter := cache.NewRedisUnreadCounter(redisClient)
	notificationService := notificationapp.NewService(notificationRepo, unreadCounter, log)

	// Initialize JWT service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize handlers
	base := handler.NewBaseHandler(log)
	accountingHandler := handler.NewAccountingHandler(base, dashboardService)
	inventoryHandler := handler.NewInventoryHandler(base, auditService)
	roleHandler := handler.NewRoleHandler(base, roleService)
	productHandler := handler.NewProductHandler(base, productService)
	notificationHandler := handler.NewNotificationHandler(base, notificationService)
	healthHandler := handler.NewHealthHandler(base, db, redisClient)

	// Setup gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Global middleware
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler.Check)

	// Versioned API routes behind JWT authentication
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/health",
		},
		Logger: log,
	}))

	// Accounting domain (financial dashboard)
	accountingRoutes := router.NewDomainGroup("accounting", "/accounting")
	accountingRoutes.GET("/summary", accountingHandler.GetSummary)
	accountingRoutes.GET("/employee-profit/:id", accountingHandler.GetEmployeeProfit)

	// Inventory domain (audit and operation history)
	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.GET("/audit", inventoryHandler.Audit)
	inventoryRoutes.POST("/audit/fix", inventoryHandler.FixDiscrepancies)
	inventoryRoutes.GET("/operations-log", inventoryHandler.OperationsLog)

	// Identity domain (roles and permissions)
	identityRoutes := router.NewDomainGroup("identity", "")
	identityRoutes.POST("/roles", roleHandler.Create)
	identityRoutes.GET("/roles", roleHandler.List)
	identityRoutes.GET("/roles/:id", roleHandler.GetByID)
	identityRoutes.PUT("/roles/:id", roleHandler.Update)
	identityRoutes.DELETE("/roles/:id", roleHandler.Delete)
	identityRoutes.GET("/permissions", roleHandler.ListPermissions)

	// Catalog domain (storefront products)
	catalogRoutes := router.NewDomainGroup("catalog", "/products")
	catalogRoutes.GET("", productHandler.List)
	catalogRoutes.GET("/:id", productHandler.GetByID)

	// Notification domain (employee feed)
	notificationRoutes := router.NewDomainGroup("notifications", "/notifications")
	notificationRoutes.POST("", notificationHandler.Notify)
	notificationRoutes.GET("", notificationHandler.Feed)
	notificationRoutes.GET("/unread-count", notificationHandler.UnreadCount)
	notificationRoutes.POST("/:id/read", notificationHandler.MarkRead)

	r.Register(accountingRoutes).
		Register(inventoryRoutes).
		Register(identityRoutes).
		Register(catalogRoutes).
		Register(notificationRoutes)

	healthRoutes := router.NewDomainGroup("health", "/health")
	healthRoutes.GET("", healthHandler.Check)
	r.Register(healthRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
