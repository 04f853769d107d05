package app

import (
	"context"
	"fmt"
	"log/slog"

	"vitrine-backend/internal/cache"
	"vitrine-backend/internal/config"
)

// OpenCache connects to Redis when it is configured and falls back to a
// no-op cache otherwise. Keys are prefixed per environment.
func OpenCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Cache, func() error, error) {
	opts := cache.RedisOptions{URL: cfg.RedisURL, Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}
	if !opts.Enabled() {
		return cache.NewNoop(), func() error { return nil }, nil
	}

	redisCache, err := cache.OpenRedis(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	logger.Info("redis connected")
	return cache.WithPrefix(redisCache, "vitrine:"+cfg.Env+":"), redisCache.Close, nil
}
