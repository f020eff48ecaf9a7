// Package tenantconfig кеш конфигурации арендаторов в Redis.
// Конфигурация читается на каждый запрос на создание брони, поэтому
// кешируется с небольшим TTL и инвалидируется при обновлении.
package tenantconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
)

// ErrCacheMiss возвращается, когда конфигурации нет в кеше
var ErrCacheMiss = errors.New("tenantconfig.cache: cache miss")

// ErrCacheUnavailable возвращается при ошибках Redis
var ErrCacheUnavailable = errors.New("tenantconfig.cache: cache unavailable")

// Cache кеш конфигурации арендаторов
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кеш поверх клиента Redis
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает конфигурацию из кеша
func (c *Cache) Get(ctx context.Context, tenantID int64) (*domain.TenantReservationConfig, error) {
	raw, err := c.client.Get(ctx, cacheKey(tenantID)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrCacheUnavailable, err)
	}

	var cfg domain.TenantReservationConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		// Повреждённая запись равносильна промаху
		return nil, ErrCacheMiss
	}

	return &cfg, nil
}

// Set сохраняет конфигурацию в кеш с TTL
func (c *Cache) Set(ctx context.Context, cfg *domain.TenantReservationConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrCacheUnavailable, err)
	}

	if err := c.client.Set(ctx, cacheKey(cfg.TenantID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate удаляет конфигурацию из кеша (вызывается при обновлении конфигурации)
func (c *Cache) Invalidate(ctx context.Context, tenantID int64) error {
	if err := c.client.Del(ctx, cacheKey(tenantID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrCacheUnavailable, err)
	}
	return nil
}

func cacheKey(tenantID int64) string {
	return fmt.Sprintf("tenantcfg:%d", tenantID)
}
