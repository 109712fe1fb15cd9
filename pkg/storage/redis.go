package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds connection settings for the Redis backend.
type RedisConfig struct {
	ConnectionURL  string        `env:"SHOPHUB_REDIS_URL" envDefault:"redis://localhost:6379/0"` // URL in the format "redis://:password@localhost:6379/0"
	KeyPrefix      string        `env:"SHOPHUB_REDIS_PREFIX" envDefault:"shopkit:"`              // Prefix applied to every stored key
	RetryAttempts  int           `env:"SHOPHUB_REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // Connection attempts before giving up
	RetryInterval  time.Duration `env:"SHOPHUB_REDIS_RETRY_INTERVAL" envDefault:"5s"`            // Delay between connection attempts
	ConnectTimeout time.Duration `env:"SHOPHUB_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // Overall deadline for establishing the connection
}

// Redis implements Storage on a Redis server. Intended for headless or
// server-rendered storefront deployments where several processes share one
// client state.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to the Redis server described by cfg, retrying per the
// retry settings, and returns a store scoped to cfg.KeyPrefix.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	attempts := max(cfg.RetryAttempts, 1)
	for range attempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return &Redis{client: client, prefix: cfg.KeyPrefix}, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// NewRedisWithClient wraps an already-connected client. Useful for tests and
// for applications that manage the connection themselves.
func NewRedisWithClient(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// Get retrieves the value stored under key
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", errors.Join(ErrReadFailed, err)
	}
	return value, nil
}

// Set stores value under key with no expiry
func (r *Redis) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// Remove deletes the value stored under key
func (r *Redis) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
