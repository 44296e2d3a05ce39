package redis_fx

import (
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"globetrek/internal/config"
	"globetrek/internal/infra"
	"globetrek/pkg/logger"
)

var Module = fx.Provide(provideRedis)

func provideRedis(cfg *config.Config, log logger.Logger) *goredis.Client {
	return infra.InitRedis(cfg, log)
}
