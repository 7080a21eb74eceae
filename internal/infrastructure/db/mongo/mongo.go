package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tablekit/restaurant-console/internal/pkg/config"
)

const defaultTimeout = 10 * time.Second

// Connect opens a client, pings it, and returns the credential database.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// Checker reports MongoDB reachability to the readiness probe.
type Checker struct {
	db *mongo.Database
}

func NewChecker(db *mongo.Database) *Checker {
	return &Checker{db: db}
}

func (c *Checker) Name() string { return "mongodb" }

func (c *Checker) Check(ctx context.Context) error {
	return c.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
