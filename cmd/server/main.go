package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rampcontrol-service/internal/infrastructure/config"
	"rampcontrol-service/internal/infrastructure/persistence"
	"rampcontrol-service/internal/interface/api"
	gormRepo "rampcontrol-service/internal/interface/repository"
	"rampcontrol-service/internal/usecase"
	"rampcontrol-service/pkg/logger"
	"rampcontrol-service/pkg/metrics"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting RampControl Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up MongoDB connection for the report archive
	log.Info("Connecting to MongoDB")
	mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up repositories
	reportRepository := gormRepo.NewGormReportRepository(gormDB)
	equipmentRepository := gormRepo.NewGormEquipmentRepository(gormDB)
	leaderRepository := gormRepo.NewGormLeaderRepository(gormDB)
	archiveRepository := gormRepo.NewMongoArchiveRepository(mongoDB)
	whatsappRepository := gormRepo.NewWhatsappRepository(cfg.WhatsAppEndpoint, cfg.WhatsAppToken, cfg.WhatsAppGroupID, log)

	// Set up metrics and usecases
	appMetrics := metrics.NewMetrics("rampcontrol")
	aggregator := usecase.NewPeriodAggregator(log)
	reconciler := usecase.NewMaintenanceReconciler(log)
	analyticsService := usecase.NewAnalyticsService(reportRepository, equipmentRepository, aggregator, reconciler, appMetrics, log)
	dashboardService := usecase.NewDashboardService(reportRepository, equipmentRepository, log)
	reportSubmitter := usecase.NewReportSubmitter(reportRepository, equipmentRepository, archiveRepository, whatsappRepository, appMetrics, log)

	// Periodic refresh: recompute the rolling 30-day aggregates so the
	// fleet gauges track the store without waiting for a request.
	go func() {
		refreshTicker := time.NewTicker(cfg.RefreshInterval)
		defer refreshTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Refresh loop stopped")
				return
			case <-refreshTicker.C:
				now := time.Now()
				start := now.AddDate(0, 0, -30).Format("2006-01-02")
				end := now.Format("2006-01-02")
				if _, err := analyticsService.BuildPeriodAnalytics(ctx, start, end, ""); err != nil {
					log.Error("Error refreshing analytics", "error", err)
				}
			}
		}
	}()

	// Set up HTTP server
	handler := api.NewHandler(dashboardService, analyticsService, reportSubmitter, leaderRepository, archiveRepository, log)
	router := api.NewRouter(handler, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("RampControl Service stopped")
}
