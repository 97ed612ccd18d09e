package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisPingTimeout bounds the connection check done at startup.
const redisPingTimeout = 5 * time.Second

// InitRedis connects to the move cache at url, a redis:// or rediss:// URL.
// The client is closed again when the server does not answer a ping.
func InitRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid move cache URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("move cache at %s is unreachable: %w", opts.Addr, err)
	}

	slog.Debug("Connected to move cache", "addr", opts.Addr, "db", opts.DB)
	return client, nil
}
