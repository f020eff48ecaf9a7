package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	"github.com/m04kA/RBP-ReservationService/internal/integrations/notifyservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, rsv *domain.Reservation) (*domain.Reservation, error)
	ListByTenant(ctx context.Context, filter domain.TenantReservationsFilter) ([]*domain.Reservation, error)
}

// TenantConfigProvider интерфейс источника конфигурации арендатора.
// При отсутствии арендатора возвращает ошибку, сводимую к tenantcfg.ErrConfigNotFound.
type TenantConfigProvider interface {
	GetConfig(ctx context.Context, tenantID int64) (*domain.TenantReservationConfig, error)
}

// NotifyServiceClient интерфейс клиента для NotifyService
type NotifyServiceClient interface {
	SendReservationCreated(ctx context.Context, event notifyservice.ReservationCreatedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
