package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/launchos/curve-engine/internal/adapter"
	"github.com/launchos/curve-engine/internal/config"
	"github.com/launchos/curve-engine/internal/logger"
	"github.com/launchos/curve-engine/internal/store"
	"github.com/launchos/curve-engine/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize rollup sweeper
	rollupConfig := &sweeper.RollupConfig{
		Interval:        cfg.RollupSweeper.Interval,
		BatchSize:       cfg.RollupSweeper.BatchSize,
		WorkerPoolSize:  cfg.RollupSweeper.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.RollupSweeper.Worker.WorkerQueueSize,
	}
	rollupSweeper := sweeper.NewRollupSweeper(rollupConfig, dataStore, store.NewCursorStore(db), adapter.NewClock())

	logger.InfoCtx(ctx, "Initialized rollup sweeper (continuous mode)",
		zap.Duration("interval", cfg.RollupSweeper.Interval),
		zap.Int("batch_size", cfg.RollupSweeper.BatchSize),
		zap.Int("worker_pool_size", cfg.RollupSweeper.Worker.WorkerPoolSize),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := rollupSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := rollupSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
