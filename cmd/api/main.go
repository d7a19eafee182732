// Command api runs the tutor course HTTP service.
//
// Startup order: env file, config, logging, tracing, store, router, server.
// Shutdown drains in-flight requests before flushing the tracer.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ahyz0569/go-tutor-backend/internal/config"
	httpapi "github.com/ahyz0569/go-tutor-backend/internal/http"
	"github.com/ahyz0569/go-tutor-backend/internal/observability"
	"github.com/ahyz0569/go-tutor-backend/internal/store"
	"github.com/ahyz0569/go-tutor-backend/internal/sysutil"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title        Tutor Course API
// @version      1.0.0
// @description  Course catalog service for tutors.
// @BasePath     /
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.ConfigureLogger(cfg.LogLevel, cfg.LogPretty)

	log.Info().
		Str("version", version).
		Str("port", cfg.Port).
		Str("backend", cfg.StoreBackend).
		Msg("starting tutor course api")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	st, err := buildStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("store setup failed")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, st, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
	log.Info().Msg("stopped")
}

// buildStore selects the course store backend from configuration. The SQLite
// backend gets its schema migrated and query tracing attached when OTel is on.
func buildStore(cfg config.Config) (store.Store, error) {
	if cfg.StoreBackend == config.BackendMemory {
		return store.NewMemoryStore(), nil
	}

	db, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := store.AutoMigrate(db); err != nil {
		return nil, err
	}
	if cfg.OTEL.Enabled {
		if err := store.EnableTracing(db); err != nil {
			return nil, err
		}
	}
	return store.NewSQLStore(db), nil
}
