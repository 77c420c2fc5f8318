package cache

import (
	"go.uber.org/zap"

	"github.com/taxpractice/backend/internal/application/scenario"
	"github.com/taxpractice/backend/internal/infrastructure/config"
)

// New creates the scenario cache for the configured deployment. When
// Redis is enabled it is tried first; on connection failure the cache
// falls back to in-memory with a warning rather than failing startup.
// In-memory caches do not share state across instances.
func New(cfg config.RedisConfig, logger *zap.Logger) scenario.Cache {
	if !cfg.Enabled {
		logger.Info("using in-memory scenario cache")
		return NewMemoryCache()
	}

	redisCache, err := NewRedisCache(cfg, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory scenario cache",
			zap.String("addr", cfg.RedisAddr()),
			zap.Error(err),
		)
		return NewMemoryCache()
	}

	logger.Info("using Redis scenario cache", zap.String("addr", cfg.RedisAddr()))
	return redisCache
}

var _ scenario.Cache = (*MemoryCache)(nil)
var _ scenario.Cache = (*RedisCache)(nil)
