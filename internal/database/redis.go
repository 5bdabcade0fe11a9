package database

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/foodgram/backend/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient connects to the configured Redis and pings it. Without a
// REDIS_URL or REDIS_HOST it returns a nil client and no error.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	opts, err := redisOptions(cfg)
	if err != nil || opts == nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}

	log.Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("redis connected")
	return client, nil
}

// redisOptions prefers REDIS_URL over the discrete host settings
func redisOptions(cfg *config.Config) (*redis.Options, error) {
	switch {
	case cfg.RedisURL != "":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		return opts, nil
	case cfg.RedisHost != "":
		return &redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, nil
	default:
		return nil, nil
	}
}
