package infra

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"globetrek/internal/config"
	"globetrek/pkg/logger"
)

// InitRedis returns nil when Redis is not configured or unreachable; the
// country-list cache degrades to live fetches in that case.
func InitRedis(cfg *config.Config, log logger.Logger) *goredis.Client {
	if cfg.RedisAddr == "" {
		log.Info("redis not configured, country-list cache disabled")
		return nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnf("redis unreachable at %s, country-list cache disabled: %v", cfg.RedisAddr, err)
		_ = client.Close()
		return nil
	}

	log.Infof("redis connected at %s", cfg.RedisAddr)
	return client
}
