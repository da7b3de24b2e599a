package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/launchos/curve-engine/internal/adapter"
	"github.com/launchos/curve-engine/internal/config"
	"github.com/launchos/curve-engine/internal/launchpad"
	"github.com/launchos/curve-engine/internal/ledger"
	"github.com/launchos/curve-engine/internal/logger"
	"github.com/launchos/curve-engine/internal/providers/jetstream"
	temporal "github.com/launchos/curve-engine/internal/providers/temporal"
	"github.com/launchos/curve-engine/internal/store"
	"github.com/launchos/curve-engine/internal/transfer"
	"github.com/launchos/curve-engine/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Launch Worker")

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

	dataStore := store.NewPGStore(db)

	// Connect to NATS for launch event publishing
	natsPublisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Initialize launchpad client for mint, pool and airdrop calls
	httpClient := adapter.NewHTTPClient(cfg.Launchpad.HTTPTimeout)
	launchpadClient := launchpad.NewClient(httpClient, cfg.Launchpad.BaseURL, cfg.Launchpad.APIKey)
	logger.InfoCtx(ctx, "Initialized launchpad client", zap.String("base_url", cfg.Launchpad.BaseURL))

	// Build the trading ledger used by launch activities
	clock := adapter.NewClock()
	transfers := transfer.NewBuilder(transfer.Destinations{
		CommunityWallet: cfg.Treasury.CommunityWallet,
		BuybackWallet:   cfg.Treasury.BuybackWallet,
	})
	curveLedger := ledger.New(dataStore, natsPublisher, clock, transfers)

	// Initialize launch executor for saga activities
	launchExecutor := workflows.NewExecutor(dataStore, curveLedger, launchpadClient, natsPublisher, clock)

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()

	logger.InfoCtx(ctx, "Connected to Temporal",
		zap.String("host_port", cfg.Temporal.HostPort),
		zap.String("namespace", cfg.Temporal.Namespace),
	)

	// Create Temporal worker with logger and Sentry interceptor
	sentryInterceptor := temporal.NewSentryActivityInterceptor()
	temporalWorker := worker.New(temporalClient,
		cfg.Temporal.LaunchTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				sentryInterceptor,
			},
		})

	// Create launch worker instance
	workerCore := workflows.NewWorkerCore(launchExecutor)

	// Register launch workflow
	temporalWorker.RegisterWorkflow(workerCore.LaunchCurve)
	logger.InfoCtx(ctx, "Registered launch workflow")

	// Register launch activities
	temporalWorker.RegisterActivity(launchExecutor.CheckLaunchEligibility)
	temporalWorker.RegisterActivity(launchExecutor.BeginLaunchAttempt)
	temporalWorker.RegisterActivity(launchExecutor.FreezeCurve)
	temporalWorker.RegisterActivity(launchExecutor.TakeSnapshot)
	temporalWorker.RegisterActivity(launchExecutor.MintToken)
	temporalWorker.RegisterActivity(launchExecutor.SeedLiquidity)
	temporalWorker.RegisterActivity(launchExecutor.AirdropTokens)
	temporalWorker.RegisterActivity(launchExecutor.FinalizeLaunch)
	temporalWorker.RegisterActivity(launchExecutor.CompensateLaunch)
	logger.InfoCtx(ctx, "Registered launch activities")

	// Start the worker
	err = temporalWorker.Start()
	if err != nil {
		logger.FatalCtx(ctx, "Failed to start Temporal worker", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Launch Worker started successfully",
		zap.String("launch_task_queue", cfg.Temporal.LaunchTaskQueue),
	)

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.InfoCtx(ctx, "Shutting down Launch Worker...")

	// Stop the worker
	temporalWorker.Stop()

	logger.InfoCtx(ctx, "Launch Worker stopped")
}
