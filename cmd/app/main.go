package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/farmverse/farmverse/internal/bootstrap"
	"github.com/farmverse/farmverse/internal/config"
	"github.com/farmverse/farmverse/internal/database"
	fsrepo "github.com/farmverse/farmverse/internal/database/firestore"
	"github.com/farmverse/farmverse/internal/farm"
	"github.com/farmverse/farmverse/internal/handler"
	"github.com/farmverse/farmverse/internal/market"
	"github.com/farmverse/farmverse/internal/reward"
	"github.com/farmverse/farmverse/internal/scheduler"
	"github.com/farmverse/farmverse/internal/server"
	"github.com/farmverse/farmverse/internal/sse"
	"github.com/farmverse/farmverse/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// @title FarmVerse API
// @version 1.0
// @description Crop growth and market simulation engine
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	ctx := context.Background()

	// Storage backend
	var (
		repos      *bootstrap.Repositories
		store      handler.HealthChecker
		closeStore func()
	)
	switch cfg.Backend {
	case config.BackendFirestore:
		client, err := fsrepo.NewClient(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
		if err != nil {
			slog.Error("Failed to connect to Firestore", "error", err)
			os.Exit(1)
		}
		repos = bootstrap.InitializeFirestoreRepositories(client)
		store = fsrepo.NewHealth(client)
		closeStore = func() { _ = client.Close() }
	default:
		dbPool, err := database.NewPool(cfg.GetDBConnString(), bootstrap.DBMaxConnections, bootstrap.DBMaxIdleTime, bootstrap.DBMaxLifetime)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		repos = bootstrap.InitializePostgresRepositories(dbPool)
		store = database.NewPingChecker(dbPool)
		closeStore = dbPool.Close
	}

	eventBus := bootstrap.InitializeEventSystem()

	catalog := cfg.Catalog()
	if err := catalog.Validate(); err != nil {
		slog.Error("Invalid crop catalog", "error", err)
		os.Exit(1)
	}

	// Services
	farmSvc := farm.NewService(catalog, repos.Crop, repos.Wallet, repos.Market, eventBus)
	marketSvc := market.NewService(catalog, repos.Market, repos.Wallet, repos.Transactions, eventBus)
	rewardSvc := reward.NewService(repos.Wallet, repos.Notification, eventBus)

	if err := bootstrap.EnsureMarketPrices(ctx, marketSvc, repos.Market); err != nil {
		slog.Error("Failed to seed market prices", "error", err)
		os.Exit(1)
	}

	// Live event stream
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, eventBus).Subscribe()

	// Background jobs
	pool := worker.NewPool(bootstrap.WorkerPoolSize, bootstrap.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.GrowthReconcileInterval, worker.NewGrowthReconcileJob(farmSvc))
	sched.Schedule(cfg.MarketTickInterval, worker.NewMarketTickJob(marketSvc))
	sched.Schedule(cfg.DailyRewardInterval, worker.NewDailyRewardJob(rewardSvc))

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, store, farmSvc, marketSvc, rewardSvc, repos.Notification, repos.Wallet, repos.Transactions, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for termination signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	case sig := <-quit:
		slog.Info("Signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		SSEHub:     hub,
		CloseStore: closeStore,
	})
}
