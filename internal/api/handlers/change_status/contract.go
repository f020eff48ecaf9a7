package change_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/RBP-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	ChangeStatus(ctx context.Context, id uuid.UUID, req *models.ChangeStatusRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
