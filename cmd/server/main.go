package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	pantryapp "github.com/smartgrocer/backend/internal/application/pantry"
	planningapp "github.com/smartgrocer/backend/internal/application/planning"
	"github.com/smartgrocer/backend/internal/domain/pantry"
	"github.com/smartgrocer/backend/internal/domain/planning"
	"github.com/smartgrocer/backend/internal/infrastructure/config"
	"github.com/smartgrocer/backend/internal/infrastructure/logger"
	"github.com/smartgrocer/backend/internal/infrastructure/persistence"
	"github.com/smartgrocer/backend/internal/interfaces/http/handler"
	"github.com/smartgrocer/backend/internal/interfaces/http/middleware"
	"github.com/smartgrocer/backend/internal/interfaces/http/router"
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
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting SmartGrocer Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	log.Info("Database ready", zap.String("path", cfg.Database.Path))

	// Repositories
	entryRepo := persistence.NewGormEntryRepository(db.DB)
	consumptionRepo := persistence.NewGormConsumptionRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	preferenceRepo := persistence.NewGormPreferenceRepositoryWithDefaults(db.DB, pantry.Preferences{
		ReminderThresholdDays: cfg.Pantry.ReminderThresholdDays,
		DefaultExpiryDays:     cfg.Pantry.DefaultExpiryDays,
	})

	// Domain engines
	estimator := pantry.NewRateEstimator(cfg.Pantry.ConsumptionOverrides)
	reminderEngine := pantry.NewReminderEngine(estimator)

	// Application services
	pantryService := pantryapp.NewPantryService(entryRepo, consumptionRepo, purchaseRepo, preferenceRepo)
	reminderService := pantryapp.NewReminderService(entryRepo, consumptionRepo, preferenceRepo, reminderEngine)
	preferenceService := pantryapp.NewPreferenceService(preferenceRepo)
	planService := planningapp.NewPlanService(planning.NewRecipePlanner(), entryRepo, reminderService, cfg.Pantry.PlanDays)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	engine.GET("/health", healthHandler(db))

	router.NewRouter(engine).
		Register(handler.NewPantryHandler(pantryService, reminderService)).
		Register(handler.NewPreferenceHandler(preferenceService)).
		Register(handler.NewPlanHandler(planService)).
		Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

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

// healthHandler reports service and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
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
