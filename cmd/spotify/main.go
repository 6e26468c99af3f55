package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"spotify/internal/catalog"
	"spotify/internal/config"
	"spotify/internal/logging"
)

func main() {
	cfg, err := config.Load("config/local.env", ".env")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logging.SetGlobalLogger(logger)

	store := catalog.New()

	if cfg.SeedDemoData {
		if err := bootstrapDemoData(context.Background(), store); err != nil {
			logger.Fatal().Err(err).Msg("seed demo data")
		}
		stats := store.Stats(context.Background())
		logger.Info().
			Int("users", stats.Users).
			Int("albums", stats.Albums).
			Int("songs", stats.Songs).
			Msg("Demo catalog loaded")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newHTTPHandler(cfg, logger, store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("Catalog API starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down catalog API...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Catalog API exited")
}
