package tenantconfig

import (
	"context"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации арендаторов
type ConfigRepository interface {
	GetByTenantID(ctx context.Context, tenantID int64) (*domain.TenantReservationConfig, error)
	Upsert(ctx context.Context, cfg *domain.TenantReservationConfig) (*domain.TenantReservationConfig, error)
}

// ConfigCache кеш конфигурации (Redis). Может отсутствовать (nil-безопасная обёртка в сервисе).
type ConfigCache interface {
	Get(ctx context.Context, tenantID int64) (*domain.TenantReservationConfig, error)
	Set(ctx context.Context, cfg *domain.TenantReservationConfig) error
	Invalidate(ctx context.Context, tenantID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
