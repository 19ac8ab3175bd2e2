package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmoldabe-dev/subkeep/internal/config"
	goredis "github.com/redis/go-redis/v9"
)

// NewRedis connects to cfg.Redis.URL. It returns a nil client without error
// when no URL is configured.
func NewRedis(ctx context.Context, cfg *config.Config, log *slog.Logger) (*goredis.Client, error) {
	if cfg.Redis.URL == "" {
		log.Info("redis url not set, undo slots stay in memory")
		return nil, nil
	}

	opts, err := goredis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Error("failed to parse redis url", slog.String("error", err.Error()))
		return nil, err
	}

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Error("redis ping failed", slog.String("error", err.Error()))
		client.Close()
		return nil, err
	}

	log.Info("redis connection established", slog.String("addr", opts.Addr))
	return client, nil
}
