// Eligius pipeline server: accepts clinical trial protocol uploads, drives
// the extraction/grounding pipeline through the transactional outbox, and
// serves the review API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/eligius-health/eligius/pkg/api"
	"github.com/eligius-health/eligius/pkg/cleanup"
	"github.com/eligius-health/eligius/pkg/config"
	"github.com/eligius-health/eligius/pkg/database"
	"github.com/eligius-health/eligius/pkg/llm"
	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/objectstore"
	"github.com/eligius-health/eligius/pkg/outbox"
	"github.com/eligius-health/eligius/pkg/pipeline"
	"github.com/eligius-health/eligius/pkg/resilience"
	"github.com/eligius-health/eligius/pkg/services"
	"github.com/eligius-health/eligius/pkg/telemetry"
	"github.com/eligius-health/eligius/pkg/terminology"
	"github.com/eligius-health/eligius/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	httpPort := getEnv("HTTP_PORT", "8080")
	ctx := context.Background()

	slog.Info("Starting Eligius",
		"version", version.Full(),
		"http_port", httpPort)

	cfg := config.Load()

	// Tracing is a no-op without a tracking endpoint.
	traceShutdown := telemetry.Setup(cfg.MLFlowTrackingURI, logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = traceShutdown(shutdownCtx)
	}()

	breakers := resilience.NewRegistry(resilience.BreakerConfig{
		FailMax:      uint32(cfg.Resilience.FailMax),
		ResetTimeout: cfg.Resilience.ResetTimeout,
	}, logger)
	breakers.AddListener(telemetry.BreakerListener{})

	// Database.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Object store for uploaded documents.
	var store objectstore.Store
	var gcsStore *objectstore.GCSStore
	if getEnv("OBJECT_STORE", "gcs") == "memory" {
		store = objectstore.NewMemoryStore()
		slog.Warn("Using in-memory object store; uploads do not survive restarts")
	} else {
		gcsStore, err = objectstore.NewGCSStore(ctx, cfg.GCSBucket, breakers)
		if err != nil {
			slog.Error("Failed to initialize GCS store", "bucket", cfg.GCSBucket, "error", err)
			os.Exit(1)
		}
		store = gcsStore
		slog.Info("GCS object store initialized", "bucket", cfg.GCSBucket)
	}
	defer func() {
		if gcsStore != nil {
			_ = gcsStore.Close()
		}
	}()

	// Terminology grounding, with an optional Redis cache.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = rdb.Close() }()
		slog.Info("Terminology cache enabled", "addr", cfg.RedisAddr)
	}
	router := terminology.NewRouter(cfg.Terminology, cfg.Pipeline.GroundingFanOut, breakers, rdb, logger)

	// LLM extraction.
	extractor, err := llm.NewGeminiExtractor(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Pipeline.LLMTimeout, breakers, logger)
	if err != nil {
		slog.Error("Failed to initialize Gemini extractor", "error", err)
		os.Exit(1)
	}
	defer func() { _ = extractor.Close() }()
	slog.Info("Gemini extractor initialized", "model", extractor.Model())

	// Pipeline. Checkpointing needs an explicitly configured database; without
	// one, runs are one-shot and a mid-run crash replays from the start.
	batchWriter := services.NewBatchWriter(dbClient.Client, cfg.Review.InheritanceSimilarity, logger)
	entCheckpoints := pipeline.NewEntCheckpointStore(dbClient.Client)
	var checkpoints pipeline.CheckpointStore = entCheckpoints
	if !database.Configured() {
		slog.Warn("No durable database configured; checkpoints disabled, runs are one-shot")
		checkpoints = pipeline.NoopCheckpointStore{}
	}
	driver := pipeline.NewDriver([]pipeline.Node{
		pipeline.IngestNode(store, cfg.Pipeline.MaxPDFBytes),
		pipeline.ExtractNode(extractor, extractor.Model()),
		pipeline.ParseNode(),
		pipeline.GroundNode(router),
		pipeline.PersistNode(batchWriter),
	}, checkpoints, logger)
	runner := services.NewPipelineRunner(dbClient.Client, driver, logger)

	// Services.
	notifier := outbox.NewNotifier(dbClient.DB(), logger)
	protocolService := services.NewProtocolService(dbClient.Client, store, breakers, notifier, cfg.Retention, logger)
	reviewService := services.NewReviewService(dbClient.Client, logger)
	auditService := services.NewAuditService(dbClient.Client)

	// Outbox processor with LISTEN/NOTIFY wakeups; polling stays the
	// correctness mechanism.
	processor := outbox.NewProcessor(dbClient.Client, cfg.Outbox, logger)
	processor.RegisterHandler(models.EventProtocolUploaded, runner.HandleUploaded)
	processor.RegisterHandler(models.EventProtocolReExtract, runner.HandleReExtract)
	processor.RegisterHandler(models.EventProtocolArchived, services.ArchivedHandler(entCheckpoints, logger))
	if err := processor.Start(ctx); err != nil {
		slog.Error("Failed to start outbox processor", "error", err)
		os.Exit(1)
	}

	listenerCtx, stopListener := context.WithCancel(ctx)
	defer stopListener()
	wakeCh := make(chan struct{}, 1)
	listener := outbox.NewListener(dbConfig.DSN(), logger)
	go listener.Run(listenerCtx, wakeCh)
	go func() {
		for range wakeCh {
			processor.Wake()
		}
	}()

	// Retention sweeps.
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client, protocolService, entCheckpoints)
	cleanupService.Start(ctx)

	// HTTP API.
	server := api.NewServer(protocolService, reviewService, auditService, dbClient.DB(), breakers, logger)
	server.Start(":" + httpPort)

	slog.Info("Eligius started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// Drain HTTP first so no new work arrives, then stop the workers.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	cleanupService.Stop()
	stopListener()
	processor.Stop()

	slog.Info("Shutdown complete")
}
