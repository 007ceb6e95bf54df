package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-orchestrator/config"
	httpHandler "payment-orchestrator/internal/adapter/http/handler"
	natsBus "payment-orchestrator/internal/adapter/bus/nats"
	stripeProvider "payment-orchestrator/internal/adapter/provider/stripe"
	pgStorage "payment-orchestrator/internal/adapter/storage/postgres"
	redisStorage "payment-orchestrator/internal/adapter/storage/redis"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/internal/service"
	"payment-orchestrator/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("starting payment gateway")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	bus, err := natsBus.NewBus(ctx, natsBus.DefaultConfig(cfg.Bus.URL), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to NATS")
	}
	defer bus.Close()
	if err := bus.EnsureStreams(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to provision JetStream streams")
	}
	log.Info().Msg("NATS JetStream connected")

	merchantRepo := pgStorage.NewMerchantRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	webhookRepo := pgStorage.NewWebhookRepository(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)

	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// The transactional core: gate, scorer, provider, webhook pipeline,
	// then the orchestrator that ties them together.
	idempotencyGate := service.NewIdempotencyGate(idempotencyCache, txRepo, cfg.Idempotency.TTL, log)
	fraudScorer := service.NewFraudScorer(cfg.Fraud.Enabled, cfg.Fraud.ScoreThreshold)
	provider := stripeProvider.NewAdapter(cfg.Provider.StripeKey)

	webhookEnqueuer := service.NewWebhookEnqueuer(webhookRepo, cfg.Webhook.RetryAttempts, log)
	webhookDispatcher := service.NewWebhookDispatcher(webhookRepo, auditRepo, service.DispatcherConfig{
		PollInterval:   cfg.Webhook.PollInterval,
		RequestTimeout: cfg.Webhook.RequestTimeout,
		BatchSize:      cfg.Webhook.BatchSize,
		RetryBaseDelay: cfg.Webhook.RetryBaseDelay,
	}, log)

	orchestrator := service.NewPaymentOrchestrator(
		txRepo,
		auditRepo,
		idempotencyGate,
		fraudScorer,
		provider,
		cfg.Provider.Timeout,
		bus,
		webhookEnqueuer,
		encSvc,
		log,
	)

	authSvc := service.NewAuthService(merchantRepo, hashSvc, encSvc, tokenSvc)
	merchantSvc := service.NewMerchantService(merchantRepo, encSvc)
	auditSvc := service.NewAuditService(auditRepo, log)
	reportingSvc := service.NewReportingService(txRepo)

	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		Orchestrator:   orchestrator,
		ReportingSvc:   reportingSvc,
		MerchantRepo:   merchantRepo,
		EncSvc:         encSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		MerchantSvc:    merchantSvc,
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// The orchestrator consumer group advances the state machine for
	// every PAYMENT_INITIATED delivery; redeliveries are no-ops.
	busCtx, cancelBus := context.WithCancel(ctx)
	defer cancelBus()
	err = bus.Subscribe(busCtx, ports.TopicPaymentEvents, ports.ConsumerGroupOrchestrator, func(handlerCtx context.Context, evt ports.PaymentEvent) error {
		return orchestrator.Process(handlerCtx, evt.Transaction.ID)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to subscribe orchestrator consumer group")
	}

	// The analytics group is a read-only mirror of terminal events. It
	// never calls Process, so it cannot double-dispatch a charge.
	err = bus.Subscribe(busCtx, ports.TopicPaymentResults, ports.ConsumerGroupAnalytics, func(_ context.Context, evt ports.PaymentEvent) error {
		log.Info().
			Str("transaction_id", evt.Transaction.ID.String()).
			Str("event_type", evt.EventType).
			Msg("analytics: terminal event observed")
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to subscribe analytics consumer group")
	}

	dispatcherCtx, cancelDispatcher := context.WithCancel(ctx)
	defer cancelDispatcher()
	go webhookDispatcher.Run(dispatcherCtx)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	cancelDispatcher()
	cancelBus()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
