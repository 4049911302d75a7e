package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mt5-gateway/config"
	httpHandler "mt5-gateway/internal/adapter/http/handler"
	"mt5-gateway/internal/adapter/platform"
	pgStorage "mt5-gateway/internal/adapter/storage/postgres"
	redisStorage "mt5-gateway/internal/adapter/storage/redis"
	"mt5-gateway/internal/core/ports"
	"mt5-gateway/internal/service"
	"mt5-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting MT5 Gateway")

	maxAmount, err := cfg.Platform.MaxAmountDecimal()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid platform.max_amount")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores. The stored session outlives the freshness
	// window by a margin; staleness is judged on read.
	outcomeCache := redisStorage.NewOutcomeCache(rdb)
	sessionStore := redisStorage.NewSessionStore(rdb, 2*cfg.Platform.SessionTTL)

	// Initialize platform transport and manager session
	transport, err := platform.NewClient(
		cfg.Platform.BaseURL,
		cfg.Platform.Agent,
		cfg.Platform.ConnectTimeout,
		cfg.Platform.RequestTimeout,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize platform client")
	}
	session := service.NewManagerSession(transport, service.NewCredentialHasher(), sessionStore, cfg.Platform, log)

	// Initialize business services
	balanceCli := service.NewBalanceService(transport, session, log)
	paymentSvc := service.NewPaymentService(
		ledgerRepo,
		balanceCli,
		outcomeCache,
		transactor,
		maxAmount,
		log,
	)
	accountCli := service.NewAccountService(transport, session, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		AccountCli:     accountCli,
		Admin:          cfg.Admin,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
