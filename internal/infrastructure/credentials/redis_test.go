package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type stubRedis struct {
	values map[string]string
	getErr error
}

func newStubRedis() *stubRedis {
	return &stubRedis{values: make(map[string]string)}
}

func (r *stubRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if r.getErr != nil {
		return redis.NewStringResult("", r.getErr)
	}
	v, ok := r.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (r *stubRedis) MSet(_ context.Context, values ...interface{}) *redis.StatusCmd {
	for i := 0; i+1 < len(values); i += 2 {
		r.values[values[i].(string)] = values[i+1].(string)
	}
	return redis.NewStatusResult("OK", nil)
}

func (r *stubRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := r.values[k]; ok {
			delete(r.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore(t *testing.T) {
	exerciseStore(t, NewRedisStore(newStubRedis(), "ops", zerolog.Nop()))
}

func TestRedisStore_KeyLayout(t *testing.T) {
	client := newStubRedis()
	s := NewRedisStore(client, "", zerolog.Nop())
	if err := s.Save(context.Background(), sessionAR()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if client.values["console:default:access_token"] != "A" || client.values["console:default:refresh_token"] != "R" {
		t.Fatalf("unexpected keys: %+v", client.values)
	}
}

func TestRedisStore_ReadErrorIsAbsent(t *testing.T) {
	client := newStubRedis()
	client.values["console:default:access_token"] = "A"
	client.getErr = errors.New("connection refused")

	s := NewRedisStore(client, "default", zerolog.Nop())
	if s.HasSession(context.Background()) {
		t.Fatalf("read failure should report no session")
	}
}
