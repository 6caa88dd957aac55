package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisKV implements KV on a Redis client
type RedisKV struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisKV creates a Redis-backed KV store
func NewRedisKV(client *redis.Client, logger *zap.Logger) *RedisKV {
	return &RedisKV{client: client, logger: logger}
}

// Get implements KV
func (s *RedisKV) Get(ctx context.Context, key string, out any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Corrupt persisted value; treat as absent rather than failing
		// every caller until the key is rewritten.
		s.logger.Warn("discarding malformed persisted value",
			zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// Set implements KV
func (s *RedisKV) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete implements KV
func (s *RedisKV) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
