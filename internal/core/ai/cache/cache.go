// Package cache provides an optional Redis-backed cache for raw completion
// text, keyed by a digest of the request payload.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"recipe-chat/internal/infrastructure/config"
	"recipe-chat/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// ErrMiss is returned when the key is absent.
var ErrMiss = fmt.Errorf("cache miss")

// Service caches completion responses in Redis. A disabled service is a
// valid no-op value.
type Service struct {
	client *redis.Client
	cfg    config.CacheConfig
}

// NewService connects to Redis when the cache is enabled; otherwise returns
// a disabled no-op service.
func NewService(cfg config.CacheConfig) (*Service, error) {
	if !cfg.Enabled {
		return &Service{cfg: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Service{
		client: client,
		cfg:    cfg,
	}, nil
}

// Enabled reports whether the cache is active.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled && s.client != nil
}

// Key derives a stable cache key from the completion request payload.
func Key(messages []common.ChatTurn, strictJSON bool) string {
	payload, _ := json.Marshal(struct {
		Messages   []common.ChatTurn `json:"messages"`
		StrictJSON bool              `json:"strict_json"`
	}{messages, strictJSON})
	sum := sha256.Sum256(payload)
	return "completion:" + hex.EncodeToString(sum[:])
}

// Get returns the cached completion text, or ErrMiss.
func (s *Service) Get(ctx context.Context, key string) (string, error) {
	if !s.Enabled() {
		return "", ErrMiss
	}
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrMiss
	}
	if err != nil {
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	return value, nil
}

// Set stores completion text under key with the configured TTL.
func (s *Service) Set(ctx context.Context, key, value string) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.client.Set(ctx, key, value, s.cfg.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *Service) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
