package update_tenant_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RBP-ReservationService/internal/api/handlers"
	"github.com/m04kA/RBP-ReservationService/internal/service/tenantconfig"
	"github.com/m04kA/RBP-ReservationService/internal/service/tenantconfig/models"
)

const (
	msgInvalidTenantID    = "некорректный ID ресторана"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректная конфигурация бронирований"
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

// Handle PUT /api/v1/tenants/{tenantId}/reservation-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.ParseInt(mux.Vars(r)["tenantId"], 10, 64)
	if err != nil || tenantID <= 0 {
		h.logger.Warn("PUT /reservation-config - Invalid tenant id: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidTenantID)
		return
	}

	var req models.UpdateTenantConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservation-config - Invalid request body for tenant=%d: %v", tenantID, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tenantconfig.ErrInvalidInput):
			h.logger.Warn("PUT /reservation-config - Validation failed for tenant=%d: %v", tenantID, err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidConfig)
		default:
			h.logger.Error("PUT /reservation-config - Failed to update config for tenant=%d: %v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservation-config - Config updated for tenant=%d", tenantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
