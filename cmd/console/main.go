// @title        Restaurant Console
// @version      1.0
// @description  Operator console for restaurant administration.
// @host         localhost:3000
// @BasePath     /
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

	"github.com/tablekit/restaurant-console/internal/api"
	"github.com/tablekit/restaurant-console/internal/api/handler"
	"github.com/tablekit/restaurant-console/internal/core/service"
	"github.com/tablekit/restaurant-console/internal/infrastructure/apiclient"
	"github.com/tablekit/restaurant-console/internal/pkg/config"
	"github.com/tablekit/restaurant-console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "restaurant-console",
	})
	if envErr != nil {
		log.Debug().Msg(".env file not found, using environment variables")
	}

	ctx := context.Background()
	creds, err := openCredentials(ctx, cfg, logger.For(log, "credentials"))
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Credentials.Backend).Msg("failed to open credential store")
	}
	defer creds.close()

	client := apiclient.New(cfg.APIURL, creds.store, apiclient.WithLogger(logger.For(log, "apiclient")))
	checkers := append([]handler.Checker{apiclient.NewChecker(client)}, creds.checkers...)

	e := api.NewRouter(api.Dependencies{
		Auth:        service.NewAuthenticator(client, creds.store, logger.For(log, "auth")),
		Console:     service.NewConsole(creds.store, client, client, logger.For(log, "console")),
		Restaurants: client,
		Checkers:    checkers,
		Log:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("api_url", cfg.APIURL).Str("credentials", cfg.Credentials.Backend).Msg("console starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down console")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
