package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/assetdash/asset-dashboard-backend/internal/api"
	"github.com/assetdash/asset-dashboard-backend/internal/broker"
	"github.com/assetdash/asset-dashboard-backend/internal/config"
	"github.com/assetdash/asset-dashboard-backend/internal/database"
	"github.com/assetdash/asset-dashboard-backend/internal/market"
	"github.com/assetdash/asset-dashboard-backend/internal/repository"
	"github.com/assetdash/asset-dashboard-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	assetRepo := repository.NewAssetRepository(db)
	rateRepo := repository.NewRateRepository(db)
	valuationRepo := repository.NewValuationRepository(db)

	// External clients
	marketClient := market.NewClient()
	brokerClient, err := broker.NewClient(cfg.Broker)
	if err != nil {
		log.Fatalf("Failed to create broker client: %v", err)
	}
	if brokerClient.Enabled() {
		log.Println("Linked brokerage enabled")
	} else {
		log.Println("Linked brokerage disabled, serving manual assets only")
	}

	// Create services
	systemService := service.NewSystemService(db)
	assetService := service.NewAssetService(assetRepo)
	dashboardService := service.NewDashboardService(
		assetRepo,
		rateRepo,
		brokerClient,
		cfg.Valuation,
	)
	returnsService := service.NewReturnsService(
		valuationRepo,
		cfg.Valuation.Benchmarks,
	)
	snapshotService := service.NewSnapshotService(
		assetRepo,
		rateRepo,
		valuationRepo,
		marketClient,
		brokerClient,
		cfg.Valuation,
	)

	// Schedule the daily valuation snapshot
	scheduler := cron.New()
	if cfg.Snapshot.Schedule != "" {
		_, err := scheduler.AddFunc(cfg.Snapshot.Schedule, func() {
			if _, err := snapshotService.RunDailySnapshot(context.Background()); err != nil {
				log.Printf("Scheduled snapshot failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Invalid snapshot schedule %q: %v", cfg.Snapshot.Schedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Printf("Snapshot job scheduled: %s", cfg.Snapshot.Schedule)
	}

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Dashboard: dashboardService,
		Returns:   returnsService,
		Assets:    assetService,
		Snapshots: snapshotService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
