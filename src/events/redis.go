package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"preferred-observer/src/logger"
	"preferred-observer/src/models"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher publishes events as JSON on a pub/sub channel.
type RedisPublisher struct {
	rdb     *redis.Client
	Channel string
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewRedisPublisher(cfg *models.MConfig, log *logger.Logger) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(cfg.Events.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opt.MaxRetries = 3
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return NewRedisPublisherWithClient(redis.NewClient(opt), cfg.Events.Channel, log), nil
}

func NewRedisPublisherWithClient(rdb *redis.Client, channel string, log *logger.Logger) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, Channel: channel, Logger: log}
}

// -----------------------------------------------------------------------------

func (p *RedisPublisher) Publish(ctx context.Context, event models.MEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return p.rdb.Publish(ctx, p.Channel, string(data)).Err()
}

// Ping checks connectivity at startup.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}
