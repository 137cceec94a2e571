package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"staynest-admin-backend/internal/config"
	"staynest-admin-backend/internal/jobs"
	"staynest-admin-backend/internal/logger"
	fsrepo "staynest-admin-backend/internal/repository/firestore"
	"staynest-admin-backend/internal/scheduler"
	"staynest-admin-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'snapshot-balance', 'check-balance-drift', 'send-payout-summary', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Staynest Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Firestore
	ctx := context.Background()
	var opts []option.ClientOption
	if cfg.Firestore.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firestore.ProjectID}, opts...)
	if err != nil {
		logger.Error("Failed to initialize Firebase app", "error", err)
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		logger.Error("Failed to connect to Firestore", "error", err)
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()
	logger.Info("Firestore connection established")

	// Initialize Repositories and Services
	store := fsrepo.NewStore(client)
	emailSvc := service.NewEmailService(cfg.Email.SendGridKey, cfg.Email.FromEmail, cfg.Email.FromName)
	ledgerSvc := service.NewLedgerService(store.Bookings, store.Payouts, store.Settings)

	jobRunner := jobs.NewJobRunner(store.Settings, store.Payouts, &jobs.Services{
		Ledger: ledgerSvc,
		Email:  emailSvc,
	}, cfg)

	// Run a single job and exit if requested
	if *runOnce != "" {
		switch *runOnce {
		case "snapshot-balance":
			jobRunner.SnapshotBalance()
		case "check-balance-drift":
			jobRunner.CheckBalanceDrift()
		case "send-payout-summary":
			jobRunner.SendPayoutSummary()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Start the scheduler
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
}
