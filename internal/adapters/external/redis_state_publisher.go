package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"myweather.app/internal/config"
	"myweather.app/pkg/errors"
)

// RedisStatePublisher implements StatePublisher using Redis pub/sub
type RedisStatePublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisStatePublisher creates a publisher on channel and verifies the connection
func NewRedisStatePublisher(cfg *config.RedisConfig, channel string) (*RedisStatePublisher, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}
	if channel == "" {
		return nil, errors.NewConfigurationError("state channel cannot be empty", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisStatePublisher{
		client:  client,
		channel: channel,
	}, nil
}

// Publish sends payload to every subscriber of the channel
func (r *RedisStatePublisher) Publish(ctx context.Context, payload []byte) error {
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		return errors.NewExternalAPIError("redis publish operation failed", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisStatePublisher) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisStatePublisher) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

// Channel returns the pub/sub channel snapshots are published on
func (r *RedisStatePublisher) Channel() string {
	return r.channel
}
