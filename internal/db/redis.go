package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/glowdesk/salon-scheduler/internal/config"
)

// NewRedis conecta no Redis usado para chaves de idempotência da API
// pública. Sem REDIS_ADDR o serviço sobe sem dedupe (retorna nil).
func NewRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, idempotency disabled", zap.Error(err))
		return nil
	}

	return rdb
}
