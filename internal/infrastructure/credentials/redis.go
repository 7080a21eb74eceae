package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

// RedisClient is the subset of *redis.Client the store needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	MSet(ctx context.Context, values ...interface{}) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps the tokens under console:<profile>:<key>. Keys carry no
// TTL; the backend decides when a token stops working.
type RedisStore struct {
	client  RedisClient
	profile string
	log     zerolog.Logger
}

func NewRedisStore(client RedisClient, profile string, log zerolog.Logger) *RedisStore {
	if profile == "" {
		profile = "default"
	}
	return &RedisStore{client: client, profile: profile, log: log}
}

func (s *RedisStore) Save(ctx context.Context, sess domain.Session) error {
	err := s.client.MSet(ctx,
		s.key(domain.AccessTokenKey), sess.AccessToken,
		s.key(domain.RefreshTokenKey), sess.RefreshToken,
	).Err()
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *RedisStore) AccessToken(ctx context.Context) (string, bool) {
	return s.get(ctx, domain.AccessTokenKey)
}

func (s *RedisStore) RefreshToken(ctx context.Context) (string, bool) {
	return s.get(ctx, domain.RefreshTokenKey)
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key(domain.AccessTokenKey), s.key(domain.RefreshTokenKey)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *RedisStore) HasSession(ctx context.Context) bool {
	_, ok := s.AccessToken(ctx)
	return ok
}

func (s *RedisStore) get(ctx context.Context, name string) (string, bool) {
	v, err := s.client.Get(ctx, s.key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key(name)).Msg("credential read failed, treating as absent")
		return "", false
	}
	return v, true
}

func (s *RedisStore) key(name string) string {
	return fmt.Sprintf("console:%s:%s", s.profile, name)
}
