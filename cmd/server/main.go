package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "rosterhub-backend/internal/api/http"
	"rosterhub-backend/internal/config"
	"rosterhub-backend/internal/identity"
	"rosterhub-backend/internal/logger"
	"rosterhub-backend/internal/repository/postgres"
	"rosterhub-backend/internal/security"
	"rosterhub-backend/internal/service"
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
	logger.Info("Starting Rosterhub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Identity Provider
	ids, err := identity.NewFirebaseClient(context.Background(), cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Error("Failed to initialize identity provider", "error", err)
		log.Fatalf("Failed to initialize identity provider: %v", err)
	}
	logger.Info("Identity provider initialized", "project_id", cfg.Firebase.ProjectID)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
		cfg.SendGrid.ReportTo,
		cfg.SendGrid.ReportName,
	)
	provisioner := service.NewProvisioner(ids, store.MemberRepository)
	importSvc := service.NewImportService(
		service.NewRowValidator(),
		provisioner,
		emailSvc,
		time.Duration(cfg.Import.PaceMillis)*time.Millisecond,
	)
	rosterSvc := service.NewRosterService(store.MemberRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(cfg, tokenManager, importSvc, rosterSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
