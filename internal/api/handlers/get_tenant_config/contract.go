package get_tenant_config

import (
	"context"

	"github.com/m04kA/RBP-ReservationService/internal/service/tenantconfig/models"
)

type TenantConfigService interface {
	GetByTenantID(ctx context.Context, tenantID int64) (*models.TenantConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
