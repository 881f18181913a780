package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stablestash/internal/config"
	"stablestash/internal/database"
	apierrors "stablestash/internal/errors"
	"stablestash/internal/exchange"
	"stablestash/internal/repositories"
	"stablestash/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	accountRepo := repositories.NewSavingsAccountRepository(db)
	positionRepo := repositories.NewPoolPositionRepository(db)
	entryRepo := repositories.NewLedgerEntryRepository(db)
	taskRepo := repositories.NewForwardingTaskRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)

	auditLogger := services.NewAuditLogger(logger)
	metrics := services.NewPrometheusMetrics()
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())

	// TODO: swap the simulated pool for the live exchange client once the
	// settlement team publishes its endpoint
	pool := exchange.NewSimulatedPool(
		cfg.Pool.SeedReservePrimary,
		cfg.Pool.SeedReserveSecondary,
		cfg.Pool.FeeBps,
	)

	limiter := rate.NewLimiter(rate.Limit(cfg.Pool.RatePerSecond), cfg.Pool.RateBurst)
	poolAdapter := services.NewPoolAdapter(pool, breaker, metrics, limiter, cfg.Pool.SlippageBps, logger)

	yieldService := services.NewYieldService(positionRepo, poolAdapter, auditLogger, logger)
	forwardingService := services.NewForwardingService(
		taskRepo,
		yieldService,
		auditLogger,
		metrics,
		breaker,
		cfg.Forwarding.MaxWorkers,
		cfg.Forwarding.MaxRetries,
	)

	custodyClient := services.NewInMemoryCustodyClient(logger)
	settlementVerifier := services.NewSettlementVerifier(cfg.Settlement.PublicKey)

	savingsService := services.NewSavingsService(
		accountRepo,
		positionRepo,
		entryRepo,
		auditRepo,
		yieldService,
		forwardingService,
		custodyClient,
		settlementVerifier,
		auditLogger,
		metrics,
		services.SavingsLedgerConfig{
			MinDeposit:      cfg.Ledger.MinDeposit,
			MaxSaveAmount:   cfg.Ledger.MaxSaveAmount,
			MinSaveInterval: cfg.Ledger.MinSaveInterval,
		},
		cfg.Ledger.TrustedOperator,
		cfg.Ledger.AdminKeyHash,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go forwardingService.StartProcessing(ctx)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Forwarding.SweepSchedule, func() {
		forwardingService.Sweep(ctx)
	}); err != nil {
		log.Fatal("Failed to schedule forwarding sweep:", err)
	}
	if _, err := scheduler.AddFunc("@every 30s", func() {
		tvl, err := savingsService.GetTotalValueLocked()
		if err != nil {
			logger.Error("failed to refresh total value locked", slog.String("error", err.Error()))
			return
		}
		tvlFloat, _ := tvl.Float64()
		metrics.RecordGauge("savings_total_value_locked_usdc", tvlFloat, nil)
	}); err != nil {
		log.Fatal("Failed to schedule TVL refresh:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	e.GET("/health", func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			traceID := c.Response().Header().Get(echo.HeaderXRequestID)
			resp := apierrors.NewErrorResponse(apierrors.SystemDatabaseError, traceID)
			return c.JSON(resp.GetHTTPStatus(), resp)
		}

		pending, processing, completed, failed, err := forwardingService.GetQueueDepths()
		if err != nil {
			logger.Warn("failed to read forwarding queue depths", slog.String("error", err.Error()))
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
			"forwarding_queue": map[string]int64{
				"pending":    pending,
				"processing": processing,
				"completed":  completed,
				"failed":     failed,
			},
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting ops server",
			slog.String("addr", server.Addr),
			slog.String("environment", cfg.Server.Environment),
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
