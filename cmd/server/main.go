package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	syncapp "github.com/nickborrello/BayStateApp-sub000/internal/application/sync"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/config"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/legacystore"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/logger"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/persistence"
	"github.com/nickborrello/BayStateApp-sub000/internal/interfaces/http/handler"
	"github.com/nickborrello/BayStateApp-sub000/internal/interfaces/http/router"
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

	log.Info("Starting legacy sync service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
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

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	logRepo := persistence.NewGormMigrationLogRepository(db.DB)

	// Legacy storefront client
	client, err := legacystore.NewClient(legacystore.Config{
		BaseURL:        cfg.LegacyStore.BaseURL,
		MerchantID:     cfg.LegacyStore.MerchantID,
		Password:       cfg.LegacyStore.Password,
		TimeoutSeconds: cfg.LegacyStore.TimeoutSeconds,
	}, log)
	if err != nil {
		log.Fatal("Invalid legacy store configuration", zap.Error(err))
	}

	// Initialize application services
	syncCfg := syncapp.Config{
		BatchSize:        cfg.Sync.BatchSize,
		ProgressInterval: cfg.Sync.ProgressInterval,
		MaxErrorEntries:  cfg.Sync.MaxErrorEntries,
	}
	dispatcher := syncapp.NewDispatcher(
		syncapp.NewProductSyncService(client, productRepo, logRepo, log, syncCfg),
		syncapp.NewCustomerSyncService(client, profileRepo, logRepo, log, syncCfg),
		syncapp.NewOrderSyncService(client, orderRepo, productRepo, profileRepo, logRepo, log, syncCfg),
	)
	logService := syncapp.NewMigrationLogService(logRepo, log)

	// Set up HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.MaxMultipartMemory = cfg.HTTP.MaxBodySize

	healthHandler := handler.NewHealthHandler(db.DB)
	engine.GET("/health", healthHandler.Check)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSyncHandler(dispatcher, client))
	r.Register(handler.NewMigrationLogHandler(logService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
