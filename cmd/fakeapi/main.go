package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tablekit/restaurant-console/internal/fakeapi"
	"github.com/tablekit/restaurant-console/internal/pkg/config"
	"github.com/tablekit/restaurant-console/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadFakeAPI()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "fakeapi"})

	srv, err := fakeapi.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build fake api")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("fake api starting")
		if err := srv.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
