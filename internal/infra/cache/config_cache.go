package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/macicado/barberagenda/internal/models"
)

const (
	configKey = "barberagenda:business_config"
	configTTL = 5 * time.Minute
)

// Cache read-through da configuração: falha de redis nunca sobe — a leitura
// cai para o banco e o erro vira só log
type ConfigCache struct {
	rdb *redis.Client
}

func NewConfigCache(rdb *redis.Client) *ConfigCache {
	return &ConfigCache{rdb: rdb}
}

func (c *ConfigCache) Get(ctx context.Context) *models.BusinessConfig {
	if c == nil || c.rdb == nil {
		return nil
	}

	raw, err := c.rdb.Get(ctx, configKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("config cache read failed")
		}
		return nil
	}

	var cfg models.BusinessConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		log.Warn().Err(err).Msg("config cache payload corrupt, dropping")
		c.Invalidate(ctx)
		return nil
	}

	return &cfg
}

func (c *ConfigCache) Set(ctx context.Context, cfg *models.BusinessConfig) {
	if c == nil || c.rdb == nil || cfg == nil {
		return
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, configKey, raw, configTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("config cache write failed")
	}
}

func (c *ConfigCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, configKey).Err(); err != nil {
		log.Warn().Err(err).Msg("config cache invalidation failed")
	}
}
