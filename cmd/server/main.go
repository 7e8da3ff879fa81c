package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/config"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/infra"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/repository"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/router"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Start goroutine worker pool for async receipt generation and email
	// delivery. Handlers are wired here (composition root) so the pool has
	// full access to all infrastructure dependencies. Object storage is
	// validated up front; if it is not configured, pickups still work but
	// receipts are not produced.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workerHandlers := &worker.WorkerHandlers{
		Email: worker.NewEmailWorker(infra.NewMailer(cfg)),
	}
	storage, err := infra.NewS3Storage(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("object storage unavailable — receipt uploads disabled")
	} else {
		transactionRepo := repository.NewTransactionRepository(db)
		workerHandlers.Receipt = worker.NewReceiptWorker(transactionRepo, storage)
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)

	r := router.New(cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("coin exchange backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
