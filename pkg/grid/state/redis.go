package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces spangrid state within a shared Redis instance.
const keyPrefix = "spangrid:state:"

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	// Addr is the Redis server address, e.g. "localhost:6379".
	Addr string
	// Password is optional.
	Password string
	// DB selects the Redis database number.
	DB int
	// TTL expires saved state after the given duration. Zero keeps
	// state until deleted.
	TTL time.Duration
}

// RedisStore shares saved state across instances through Redis.
// Use it when several hosts restore the same grids, e.g. a fleet of
// session-affine frontends.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

// Get retrieves the state stored under key.
func (r *RedisStore) Get(ctx context.Context, key string) (SavedState, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return SavedState{}, ErrNotFound
	}
	if err != nil {
		return SavedState{}, fmt.Errorf("redis get: %w", err)
	}

	var s SavedState
	if err := json.Unmarshal(data, &s); err != nil {
		return SavedState{}, fmt.Errorf("parse state: %w", err)
	}
	return s, nil
}

// Set stores state under key.
func (r *RedisStore) Set(ctx context.Context, key string, s SavedState) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes the state stored under key.
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (r *RedisStore) Close() error { return r.client.Close() }

var _ Store = (*RedisStore)(nil)
