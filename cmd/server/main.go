package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	api "roomreserve-backend/internal/api/http"
	"roomreserve-backend/internal/config"
	"roomreserve-backend/internal/jobs"
	"roomreserve-backend/internal/ledger"
	"roomreserve-backend/internal/logger"
	"roomreserve-backend/internal/repository/postgres"
	"roomreserve-backend/internal/scheduler"
	"roomreserve-backend/internal/security"
	"roomreserve-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Room Reservation Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

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

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Load the reservation snapshot and seed the ledger. The id counter
	// resumes at max(existing ids)+1.
	loaded, err := store.ListReservations(context.Background())
	if err != nil {
		logger.Error("Failed to load reservations", "error", err)
		log.Fatalf("Failed to load reservations: %v", err)
	}
	ldg := ledger.New(store.ReservationRepository, loaded)
	logger.Info("Reservation ledger loaded", "reservations", len(loaded))

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName, cfg.Email.Disabled)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	catalogSvc := service.NewCatalogService(store.ResourceRepository, ldg)
	reservationSvc := service.NewReservationService(ldg, store.ResourceRepository, store.UserRepository, emailSvc)

	// Start the in-process scheduler
	jobRunner := jobs.NewJobRunner(ldg, store.UserRepository, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := api.NewRouter(tokenManager, authSvc, userSvc, catalogSvc, reservationSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
