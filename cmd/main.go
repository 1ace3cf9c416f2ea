package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dreamtraffic/internal/adapter/dsp"
	httpadapter "dreamtraffic/internal/adapter/http"
	"dreamtraffic/internal/adapter/postgres"
	redisadapter "dreamtraffic/internal/adapter/redis"
	"dreamtraffic/internal/adapter/usecase"
	"dreamtraffic/internal/catalog"
	"dreamtraffic/internal/config"
	"dreamtraffic/internal/db"
	"dreamtraffic/internal/exchange"
	"dreamtraffic/internal/fees"
	"dreamtraffic/internal/vast"
)

// main is the entry point of the dreamtraffic service. It loads
// configuration, optionally runs database migrations and seeds the supply
// path catalog, connects to PostgreSQL and Redis, wires the use cases and
// then starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("seed data loaded", slog.Int("supply_paths", len(db.SupplyPaths)))
	}

	rdb, err := redisadapter.New(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		return
	}
	defer rdb.Close()

	creatives := postgres.NewCreativeRepository(pool)
	paths := postgres.NewSupplyPathRepository(pool)
	records := postgres.NewTraffickingRepository(pool)
	tags := redisadapter.NewTagCache(rdb, cfg.Redis.TagTTL)

	ssps := catalog.DefaultSSPs()
	vendors := catalog.DefaultVendors()
	gen := vast.NewGenerator(vendors, vast.Options{
		AdSystem:     cfg.VAST.AdSystem,
		TrackingBase: cfg.VAST.TrackingBase,
	})

	routerCfg := exchange.DefaultConfig()
	routerCfg.Jitter = cfg.Router.Jitter
	seed := cfg.Router.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	router := exchange.NewRouter(ssps, routerCfg, rand.NewSource(seed))
	calc := fees.NewCalculator(cfg.Fees.CostPerVideo, cfg.Fees.ImpressionGoal)

	approval := usecase.NewApprovalUseCase(creatives, logger)
	handler := httpadapter.NewHandler(httpadapter.Services{
		Creatives:   usecase.NewCreativeUseCase(creatives, logger),
		Approval:    approval,
		Tags:        usecase.NewTagUseCase(creatives, tags, gen, vendors, cfg.VAST.TagBase, logger),
		Supply:      usecase.NewSupplyChainUseCase(paths, calc, cfg.Fees.BaseCPM, router, ssps, logger),
		Trafficking: usecase.NewTraffickingUseCase(creatives, records, approval, dsp.Defaults(), logger),
	}, logger)

	srv := &http.Server{
		Addr:        cfg.HTTP.Addr(),
		Handler:     handler.Router(),
		ReadTimeout: cfg.HTTP.ReadTimeout,
	}

	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
