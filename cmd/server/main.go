package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	accountingapp "github.com/propledger/backend/internal/application/accounting"
	billingapp "github.com/propledger/backend/internal/application/billing"
	appevent "github.com/propledger/backend/internal/application/event"
	propertyapp "github.com/propledger/backend/internal/application/property"
	treasuryapp "github.com/propledger/backend/internal/application/treasury"
	"github.com/propledger/backend/internal/infrastructure/cache"
	"github.com/propledger/backend/internal/infrastructure/config"
	"github.com/propledger/backend/internal/infrastructure/event"
	"github.com/propledger/backend/internal/infrastructure/logger"
	"github.com/propledger/backend/internal/infrastructure/migration"
	"github.com/propledger/backend/internal/infrastructure/persistence"
	"github.com/propledger/backend/internal/infrastructure/scheduler"
	"github.com/propledger/backend/internal/infrastructure/telemetry"
	"github.com/propledger/backend/internal/interfaces/http/handler"
	"github.com/propledger/backend/internal/interfaces/http/middleware"
	"github.com/propledger/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			PropLedger API
//	@version		1.0
//	@description	Accounting and billing ledger for property and tenant billing

//	@contact.name	API Support
//	@contact.url	https://github.com/propledger/backend

//	@host		localhost:8080
//	@BasePath	/api/v1

var version = "dev"

const readHeaderTimeout = 10 * time.Second

func main() {
	autoMigrate := flag.Bool("migrate", false, "apply pending migrations before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	baseLog, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()

	// Telemetry providers. Disabled providers install no-ops.
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsExportInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	log := telemetry.BridgeLogger(baseLog, loggerProvider, cfg.Telemetry.ServiceName)
	defer func() { _ = log.Sync() }()

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Telemetry.ProfilingEnabled,
		ServerAddress:     cfg.Telemetry.ProfilingServerAddress,
		ApplicationName:   cfg.Telemetry.ServiceName,
		ProfileCPU:        true,
		ProfileAllocSpace: true,
		ProfileInuseSpace: true,
		ProfileGoroutines: true,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() && tracerProvider.IsEnabled() {
		if err := tracerProvider.EnableSpanProfiles(); err != nil {
			log.Warn("Failed to link spans to profiles", zap.Error(err))
		}
	}

	log.Info("Starting ledger backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	if *autoMigrate {
		m, err := migration.NewFromURL(cfg.Database.DSN(), cfg.Database.MigrationsPath, log)
		if err != nil {
			log.Fatal("Failed to open migrations", zap.Error(err))
		}
		if err := m.Up(); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
		_ = m.Close()
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
		logger.WithIgnoreRecordNotFoundError(true))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBName:          cfg.Database.DBName,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Repositories
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	conceptRepo := persistence.NewGormConceptRepository(db.DB)
	expenseTypeRepo := persistence.NewGormExpenseTypeRepository(db.DB)
	instrumentRepo := persistence.NewGormInstrumentRepository(db.DB)
	journalRepo := persistence.NewGormJournalRepository(db.DB)
	unitRepo := persistence.NewGormUnitRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)
	itemRepo := persistence.NewGormBillableItemRepository(db.DB)
	cashRepo := persistence.NewGormCashTransactionRepository(db.DB)
	depositRepo := persistence.NewGormDepositRepository(db.DB)
	transferRepo := persistence.NewGormTransferRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Event bus. Domain events are logged by the audit handler.
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewAuditLogHandler(log))
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()
	dispatcher := appevent.NewDispatcher(eventBus, log)

	businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:               meterProvider.Meter("propledger/ledger"),
		Logger:              log,
		UndepositedProvider: telemetry.NewGormUndepositedCashProvider(db.DB),
	})
	if err != nil {
		log.Fatal("Failed to register business metrics", zap.Error(err))
	}
	if meterProvider.IsEnabled() {
		businessMetrics.StartPeriodicCollection(ctx, cfg.Telemetry.MetricsExportInterval)
	}
	defer businessMetrics.Stop()

	// Application services
	accountService := accountingapp.NewAccountService(accountRepo, txScope.Accounting())
	accountService.SetEventDispatcher(dispatcher)
	registryService := accountingapp.NewRegistryService(accountRepo, conceptRepo, expenseTypeRepo, instrumentRepo)
	registryService.SetEventDispatcher(dispatcher)
	journalService := accountingapp.NewJournalService(journalRepo)
	propertyService := propertyapp.NewPropertyService(unitRepo, contractRepo)

	billingService := billingapp.NewBillingService(itemRepo, unitRepo, conceptRepo, txScope.Billing(), billingapp.Policy{
		MinRollbackReasonLength: cfg.Billing.MinRollbackReasonLength,
		MaxRetroactiveMonths:    cfg.Billing.MaxRetroactiveMonths,
		DefaultDueDay:           cfg.Billing.DefaultDueDay,
	}, log)
	billingService.SetEventDispatcher(dispatcher)
	billingService.SetBusinessMetrics(businessMetrics)

	receiptService := treasuryapp.NewReceiptService(cashRepo, txScope.Treasury(), log)
	receiptService.SetEventDispatcher(dispatcher)
	receiptService.SetBusinessMetrics(businessMetrics)
	depositService := treasuryapp.NewDepositService(cashRepo, depositRepo, txScope.Treasury(), log)
	depositService.SetEventDispatcher(dispatcher)
	depositService.SetBusinessMetrics(businessMetrics)
	transferService := treasuryapp.NewTransferService(transferRepo, txScope.Treasury(), log)
	transferService.SetEventDispatcher(dispatcher)
	transferService.SetBusinessMetrics(businessMetrics)
	expenseService := treasuryapp.NewExpenseService(expenseRepo, txScope.Treasury(), log)
	expenseService.SetEventDispatcher(dispatcher)
	expenseService.SetBusinessMetrics(businessMetrics)

	if cfg.Scheduler.Enabled {
		genScheduler, err := scheduler.NewGenerationScheduler(cfg.Scheduler, billingService, log)
		if err != nil {
			log.Fatal("Failed to configure generation scheduler", zap.Error(err))
		}
		if err := genScheduler.SetMeter(meterProvider.Meter("propledger/scheduler")); err != nil {
			log.Warn("Failed to register scheduler metrics", zap.Error(err))
		}
		if err := genScheduler.Start(ctx); err != nil {
			log.Fatal("Failed to start generation scheduler", zap.Error(err))
		}
		log.Info("Generation scheduler enabled", zap.Time("next_run", genScheduler.NextRun()))
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			if err := genScheduler.Stop(stopCtx); err != nil {
				log.Warn("Generation scheduler did not stop cleanly", zap.Error(err))
			}
		}()
	}

	var idempotency gin.HandlerFunc
	if cfg.Idempotency.Enabled {
		store, err := cache.NewIdempotencyStoreFactory(cfg.Idempotency, cfg.Redis,
			cache.WithLogger(log),
			cache.WithInMemoryFallback(!cfg.App.IsProduction()),
		).CreateStore(ctx)
		if err != nil {
			log.Fatal("Failed to create idempotency store", zap.Error(err))
		}
		defer func() { _ = store.Close() }()
		idempotency = middleware.Idempotency(store, cfg.Idempotency.TTL, log)
	}

	// HTTP engine
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		middleware.Tracing(cfg.Telemetry.ServiceName, tracerProvider.IsEnabled()),
		middleware.SpanEnricher(),
		middleware.Profiling(profiler.IsEnabled()),
		logger.GinMiddleware(log),
		middleware.Secure(cfg.App.IsProduction()),
		middleware.CORS(corsCfg),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)
	if meterProvider.IsEnabled() {
		engine.Use(middleware.HTTPMetrics(meterProvider, log))
	}
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer limiter.Stop()
		engine.Use(middleware.RateLimit(limiter))
	}

	routes := router.NewRouter(engine)
	routes.SetupDocs(middleware.SwaggerConfig{
		Enabled:    cfg.Swagger.Enabled,
		AllowedIPs: cfg.Swagger.AllowedIPs,
	})
	routes.SetupLedger(router.LedgerHandlers{
		Accounts:         handler.NewAccountHandler(accountService),
		Registry:         handler.NewRegistryHandler(registryService),
		Property:         handler.NewPropertyHandler(propertyService),
		Billables:        handler.NewBillableHandler(billingService),
		CashTransactions: handler.NewCashTransactionHandler(receiptService),
		Deposits:         handler.NewDepositHandler(depositService),
		Movements:        handler.NewMovementHandler(transferService, expenseService),
		Journal:          handler.NewJournalHandler(journalService),
		System:           handler.NewSystemHandler(db, version),
	}, idempotency)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           engine,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	shutdownTelemetry(shutdownCtx, log, tracerProvider, meterProvider, loggerProvider, profiler)
	log.Info("Server exited gracefully")
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

func shutdownTelemetry(ctx context.Context, log *zap.Logger, tp, mp, lp shutdowner, profiler *telemetry.Profiler) {
	for name, s := range map[string]shutdowner{"tracer": tp, "meter": mp, "logger": lp} {
		if err := s.Shutdown(ctx); err != nil {
			log.Warn("Telemetry shutdown failed", zap.String("provider", name), zap.Error(err))
		}
	}
	if err := profiler.Stop(); err != nil {
		log.Warn("Profiler shutdown failed", zap.Error(err))
	}
}
