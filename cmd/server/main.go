package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/partyledger/internal/adapter/http"
	"github.com/iho/partyledger/internal/adapter/http/handler"
	"github.com/iho/partyledger/internal/adapter/http/middleware"
	"github.com/iho/partyledger/internal/adapter/printer"
	postgresRepo "github.com/iho/partyledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/partyledger/internal/adapter/repository/redis"
	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/infrastructure/config"
	"github.com/iho/partyledger/internal/infrastructure/logger"
	"github.com/iho/partyledger/internal/infrastructure/metrics"
	"github.com/iho/partyledger/internal/infrastructure/postgres"
	"github.com/iho/partyledger/internal/infrastructure/redis"
	"github.com/iho/partyledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Run migrations
	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Prometheus metrics
	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	partyRepo := postgresRepo.NewPartyRepository(pool)
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool)
	voucherRepo := postgresRepo.NewVoucherRepository(pool)
	returnRepo := postgresRepo.NewReturnRepository(pool)
	debtRepo := postgresRepo.NewEmployeeDebtRepository(pool)
	deductionRepo := postgresRepo.NewDeductionRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	partyUC := usecase.NewPartyUseCase(partyRepo, idGen)
	invoiceUC := usecase.NewInvoiceUseCase(txManager, invoiceRepo, partyRepo, idGen, retrier)
	voucherUC := usecase.NewVoucherUseCase(voucherRepo, partyRepo, idGen)
	returnUC := usecase.NewReturnUseCase(returnRepo, invoiceRepo, idGen)
	employeeUC := usecase.NewEmployeeUseCase(debtRepo, deductionRepo, idGen)
	statementUC := usecase.NewStatementUseCase(partyRepo, invoiceRepo, voucherRepo, returnRepo, cache, cfg.StatementCacheTTL, m)

	// Initialize handlers
	renderer := printer.NewHTMLRenderer()
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ClientHandler:            handler.NewPartyHandler(partyUC, domain.PartyClient),
		SupplierHandler:          handler.NewPartyHandler(partyUC, domain.PartySupplier),
		ClientStatementHandler:   handler.NewStatementHandler(statementUC, domain.PartyClient, renderer),
		SupplierStatementHandler: handler.NewStatementHandler(statementUC, domain.PartySupplier, renderer),
		SaleHandler:              handler.NewInvoiceHandler(invoiceUC, domain.InvoiceSale),
		PurchaseHandler:          handler.NewInvoiceHandler(invoiceUC, domain.InvoicePurchase),
		ReceiptVoucherHandler:    handler.NewVoucherHandler(voucherUC, domain.VoucherReceipt),
		PaymentVoucherHandler:    handler.NewVoucherHandler(voucherUC, domain.VoucherDisbursement),
		SalesReturnHandler:       handler.NewReturnHandler(returnUC, domain.InvoiceSale),
		PurchaseReturnHandler:    handler.NewReturnHandler(returnUC, domain.InvoicePurchase),
		EmployeeHandler:          handler.NewEmployeeHandler(employeeUC),
		HealthHandler:            handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:         idempotencyStore,
		RateLimiter:              middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
