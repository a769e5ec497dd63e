package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"roomreserve-backend/internal/config"
	"roomreserve-backend/internal/jobs"
	"roomreserve-backend/internal/ledger"
	"roomreserve-backend/internal/logger"
	"roomreserve-backend/internal/repository/postgres"
	"roomreserve-backend/internal/scheduler"
	"roomreserve-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit ('expire-stale', 'pending-summary', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Room Reservation Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories and the ledger
	store := postgres.NewStore(db)
	loaded, err := store.ListReservations(context.Background())
	if err != nil {
		logger.Error("Failed to load reservations", "error", err)
		log.Fatalf("Failed to load reservations: %v", err)
	}
	ldg := ledger.New(store.ReservationRepository, loaded)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName, cfg.Email.Disabled)
	jobRunner := jobs.NewJobRunner(ldg, store.UserRepository, emailSvc, cfg)

	if *runOnce != "" {
		runSingleJob(jobRunner, *runOnce)
		return
	}

	// Run as a long-lived scheduler process
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	sched.Stop()
	logger.Info("Cronjob runner stopped")
}

func runSingleJob(jobRunner *jobs.JobRunner, name string) {
	switch name {
	case "expire-stale":
		jobRunner.ExpireStaleReservations()
	case "pending-summary":
		jobRunner.SendPendingSummary()
	case "all":
		jobRunner.ExpireStaleReservations()
		jobRunner.SendPendingSummary()
	default:
		logger.Error("Unknown job", "job", name)
		os.Exit(1)
	}
}
