package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/api/handler"
	"github.com/tablekit/restaurant-console/internal/core/ports"
	"github.com/tablekit/restaurant-console/internal/infrastructure/credentials"
	mongodb "github.com/tablekit/restaurant-console/internal/infrastructure/db/mongo"
	redisdb "github.com/tablekit/restaurant-console/internal/infrastructure/db/redis"
	"github.com/tablekit/restaurant-console/internal/pkg/config"
)

// openedStore is the selected credential backend and what it needs at
// shutdown.
type openedStore struct {
	store    ports.CredentialStore
	checkers []handler.Checker
	close    func()
}

func openCredentials(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*openedStore, error) {
	profile := cfg.Credentials.Profile

	switch cfg.Credentials.Backend {
	case config.BackendFile, "":
		dir := cfg.CredentialsDir()
		if dir == "" {
			log.Warn().Msg("no home directory, credentials will not persist")
		}
		return &openedStore{store: credentials.NewFileStore(dir, profile, log), close: func() {}}, nil

	case config.BackendMemory:
		return &openedStore{store: credentials.NewMemoryStore(), close: func() {}}, nil

	case config.BackendDetached:
		return &openedStore{store: credentials.DetachedStore{}, close: func() {}}, nil

	case config.BackendRedis:
		client, err := redisdb.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &openedStore{
			store:    credentials.NewRedisStore(client, profile, log),
			checkers: []handler.Checker{redisdb.NewChecker(client)},
			close: func() {
				if err := client.Close(); err != nil {
					log.Error().Err(err).Msg("close redis")
				}
			},
		}, nil

	case config.BackendMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return &openedStore{
			store:    credentials.NewMongoStore(db, profile, log),
			checkers: []handler.Checker{mongodb.NewChecker(db)},
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Error().Err(err).Msg("disconnect mongo")
				}
			},
		}, nil
	}

	return nil, fmt.Errorf("unknown credentials backend %q", cfg.Credentials.Backend)
}
