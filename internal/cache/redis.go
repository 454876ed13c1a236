package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/fleet-forecast/internal/config"
	"github.com/iwvelando/fleet-forecast/internal/forecast"
	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of the go-redis client used by RedisStore.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisStore keeps JSON-encoded Results in redis so several server replicas
// share one cache.
type RedisStore struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

// NewRedisClient connects to the configured redis server.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisStore wraps client. Keys are stored under prefix and expire after
// ttl when it is positive.
func NewRedisStore(client RedisClient, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) (forecast.Result, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return forecast.Result{}, false, nil
	}
	if err != nil {
		return forecast.Result{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var result forecast.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return forecast.Result{}, false, fmt.Errorf("decode cached schedule %s: %w", key, err)
	}
	return result, true, nil
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, key string, result forecast.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode schedule %s: %w", key, err)
	}
	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
