package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	"github.com/m04kA/RBP-ReservationService/internal/integrations/notifyservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	ListByTenant(ctx context.Context, filter domain.TenantReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) error
}

// NotifyServiceClient интерфейс клиента для NotifyService
type NotifyServiceClient interface {
	SendStatusChanged(ctx context.Context, event notifyservice.StatusChangedEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
