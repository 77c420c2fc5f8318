package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	businessapp "github.com/taxpractice/backend/internal/application/business"
	clientsapp "github.com/taxpractice/backend/internal/application/clients"
	incomeapp "github.com/taxpractice/backend/internal/application/income"
	scenarioapp "github.com/taxpractice/backend/internal/application/scenario"
	"github.com/taxpractice/backend/internal/infrastructure/cache"
	"github.com/taxpractice/backend/internal/infrastructure/config"
	"github.com/taxpractice/backend/internal/infrastructure/logger"
	"github.com/taxpractice/backend/internal/infrastructure/migration"
	"github.com/taxpractice/backend/internal/infrastructure/persistence"
	"github.com/taxpractice/backend/internal/infrastructure/persistence/models"
	"github.com/taxpractice/backend/internal/interfaces/http/handler"
	"github.com/taxpractice/backend/internal/interfaces/http/middleware"
	"github.com/taxpractice/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting tax practice backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection
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

	// Bring the schema up to date. Postgres uses versioned SQL
	// migrations; sqlite development databases go through AutoMigrate.
	if err := migrateSchema(db, cfg, log); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// Initialize repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	incomeRepo := persistence.NewGormIncomeRepository(db.DB)
	incomeTypeRepo := persistence.NewGormIncomeTypeRepository(db.DB)
	businessRepo := persistence.NewGormBusinessRepository(db.DB)
	filingTypeRepo := persistence.NewGormFilingTypeRepository(db.DB)

	// Scenario cache (Redis when enabled, in-memory otherwise)
	scenarioCache := cache.New(cfg.Redis, log)

	// Initialize services
	clientService := clientsapp.NewService(clientRepo)
	incomeService := incomeapp.NewService(incomeRepo, incomeTypeRepo)
	businessService := businessapp.NewService(businessRepo, filingTypeRepo)
	scenarioService := scenarioapp.NewService(clientRepo, incomeRepo, businessRepo, scenarioCache, log)

	// Initialize handlers
	clientHandler := handler.NewClientHandler(clientService, incomeService, scenarioService)
	incomeHandler := handler.NewClientIncomeHandler(incomeService, scenarioService)
	businessHandler := handler.NewClientBusinessHandler(businessService, scenarioService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Report JSON field names in validation errors
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint
	engine.GET("/health", healthHandler(db))

	// API routes are mounted at the root so existing consumers keep
	// their paths unchanged.
	router.NewRouter(engine).
		Register(clientHandler).
		Register(incomeHandler).
		Register(businessHandler).
		Setup()

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

// migrateSchema applies versioned migrations on postgres, or
// AutoMigrate on sqlite where the migration files do not apply.
func migrateSchema(db *persistence.Database, cfg *config.Config, log *zap.Logger) error {
	if cfg.Database.Driver == "sqlite" {
		return db.DB.AutoMigrate(models.AllModels()...)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	migrator, err := migration.New(sqlDB, "migrations", log)
	if err != nil {
		return err
	}
	return migrator.Up()
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
