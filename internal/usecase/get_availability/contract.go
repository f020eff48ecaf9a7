package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListByTenant(ctx context.Context, filter domain.TenantReservationsFilter) ([]*domain.Reservation, error)
}

// TenantConfigProvider интерфейс источника конфигурации арендатора
type TenantConfigProvider interface {
	GetConfig(ctx context.Context, tenantID int64) (*domain.TenantReservationConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
