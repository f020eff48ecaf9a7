package get_tenant_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RBP-ReservationService/internal/api/handlers"
	"github.com/m04kA/RBP-ReservationService/internal/service/tenantconfig"
)

const (
	msgInvalidTenantID = "некорректный ID ресторана"
	msgTenantNotFound  = "ресторан не найден"
)

type Handler struct {
	service TenantConfigService
	logger  Logger
}

func NewHandler(service TenantConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/reservation-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.ParseInt(mux.Vars(r)["tenantId"], 10, 64)
	if err != nil || tenantID <= 0 {
		h.logger.Warn("GET /reservation-config - Invalid tenant id: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidTenantID)
		return
	}

	result, err := h.service.GetByTenantID(r.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, tenantconfig.ErrTenantNotFound):
			handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		default:
			h.logger.Error("GET /reservation-config - Failed to fetch config for tenant=%d: %v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
