package idempotency

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyTTL = 10 * time.Minute

// Guard deduplica envios repetidos do formulário público de reserva
// via SETNX com TTL. Não guarda nenhum dado de agenda: a proibição de
// cache do motor continua valendo.
type Guard struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Guard {
	return &Guard{rdb: rdb}
}

// Claim retorna true se a chave é nova (pode prosseguir). Sem Redis
// configurado, tudo passa.
func (g *Guard) Claim(ctx context.Context, key string) (bool, error) {
	if g == nil || g.rdb == nil || key == "" {
		return true, nil
	}
	return g.rdb.SetNX(ctx, "idem:booking:"+key, 1, keyTTL).Result()
}
