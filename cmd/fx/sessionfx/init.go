package sessionfx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripreco/internal/session"
	"tripreco/internal/shared"
)

var Module = fx.Provide(
	provideCache, provideStore)

func provideCache(cfg shared.Config) session.Cache {
	if cfg.RedisAddr != "" {
		return session.NewRedisCache(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	return session.NewMemoryCache()
}

func provideStore(cache session.Cache, cfg shared.Config, logger zerolog.Logger) session.StoreInterface {
	return session.NewStore(cache, cfg.SessionTTL, logger)
}
