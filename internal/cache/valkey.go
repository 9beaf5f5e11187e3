package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ValkeyClient caches JSON-encoded listing data in Valkey.
type ValkeyClient struct {
	client redis.Cmdable
	ttl    time.Duration
	closer func() error
}

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewValkeyClient(cfg Config) (*ValkeyClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}

	return &ValkeyClient{client: rdb, ttl: cfg.TTL, closer: rdb.Close}, nil
}

// NewWithClient wraps an existing client, used with redismock in tests.
func NewWithClient(client redis.Cmdable, ttl time.Duration) *ValkeyClient {
	return &ValkeyClient{client: client, ttl: ttl}
}

// GetJSON decodes the cached value into dest. A miss returns false and no error.
func (v *ValkeyClient) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := v.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache lookup error: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("invalid cached value for %s: %w", key, err)
	}
	return true, nil
}

func (v *ValkeyClient) SetJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	if err := v.client.Set(ctx, key, string(data), v.ttl).Err(); err != nil {
		return fmt.Errorf("cache write error: %w", err)
	}
	return nil
}

func (v *ValkeyClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := v.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

func (v *ValkeyClient) Close() error {
	if v.closer == nil {
		return nil
	}
	return v.closer()
}
