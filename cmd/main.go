package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mesa-campaigns/internal/adapter/async"
	"mesa-campaigns/internal/adapter/eventbus"
	"mesa-campaigns/internal/adapter/http"
	"mesa-campaigns/internal/adapter/kafka"
	"mesa-campaigns/internal/adapter/postgres"
	"mesa-campaigns/internal/adapter/redis"
	"mesa-campaigns/internal/adapter/usecase"
	"mesa-campaigns/internal/catalog"
	"mesa-campaigns/internal/config"
	"mesa-campaigns/internal/core/port"
	"mesa-campaigns/internal/db"
)

// main wires the event bus, the campaign manager and the optional event
// sinks, then starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server and drains pending sink writes.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat := catalog.Default()
	bus := eventbus.New(logger, eventbus.WithIsolation(cfg.Bus.IsolateFailures))

	manager := usecase.NewCampaignManager(cat.Products(), logger)
	manager.SetupSubscriptions(bus)

	// One worker pool feeds every sink.
	workers := async.NewWorkerPool(ctx, cfg.Bus.SinkWorkers, cfg.Bus.SinkQueue, cfg.Bus.SinkTimeout, logger)
	// the pool drains before the sink clients close
	var closers []func()
	defer func() {
		workers.Shutdown()
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	var journal port.EventJournal
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			version, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully", slog.Uint64("version", uint64(version)))
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		closers = append(closers, pool.Close)

		journal = postgres.NewEventJournal(pool)
		usecase.NewEventForwarder("journal", journal, workers, logger).Subscribe(bus)
		logger.Info("event journal enabled", slog.String("host", cfg.Psql.Addr.Host))
	}

	var live port.LiveStats
	if cfg.Redis.Enabled {
		rdb, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		closers = append(closers, func() { _ = rdb.Close() })

		live = redisadapter.NewLiveCounters(rdb, cfg.Redis.KeyPrefix)
		usecase.NewEventForwarder("live", live, workers, logger).Subscribe(bus)
		logger.Info("live counters enabled", slog.String("addr", cfg.Redis.Addr))
	}

	if cfg.Kafka.Enabled {
		relay, err := kafkaadapter.NewEventRelay(cfg.Kafka)
		if err != nil {
			logger.Error("kafka relay error", slog.Any("error", err))
			return
		}
		closers = append(closers, func() {
			if err := relay.Close(); err != nil {
				logger.Error("kafka relay close error", slog.Any("error", err))
			}
		})

		usecase.NewEventForwarder("kafka", relay, workers, logger).Subscribe(bus)
		logger.Info("kafka relay enabled", slog.String("topic", cfg.Kafka.Topic))
	}

	svc := usecase.NewCampaignUseCase(manager, bus, cat, journal, live, logger)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
