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

	"rosterhub-backend/internal/config"
	"rosterhub-backend/internal/identity"
	"rosterhub-backend/internal/jobs"
	"rosterhub-backend/internal/logger"
	"rosterhub-backend/internal/repository/postgres"
	"rosterhub-backend/internal/scheduler"
	"rosterhub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'orphan-sweep')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rosterhub Cronjob Runner...", "log_level", cfg.Log.Level)

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

	// Initialize Identity Provider
	ids, err := identity.NewFirebaseClient(context.Background(), cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Error("Failed to initialize identity provider", "error", err)
		log.Fatalf("Failed to initialize identity provider: %v", err)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
		cfg.SendGrid.ReportTo,
		cfg.SendGrid.ReportName,
	)

	jobRunner := jobs.NewJobRunner(ids, store.MemberRepository, emailSvc, cfg)

	// One-shot mode for manual runs
	if *runOnce != "" {
		switch *runOnce {
		case "orphan-sweep":
			jobRunner.SweepOrphanIdentities()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Scheduled mode
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	logger.Info("Scheduler running", "orphan_sweep", cfg.Scheduler.OrphanSweep)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received shutdown signal", "signal", sig.String())

	sched.Stop()
}
