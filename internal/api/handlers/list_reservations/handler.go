package list_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RBP-ReservationService/internal/api/handlers"
	"github.com/m04kA/RBP-ReservationService/internal/service/reservations"
)

const (
	msgInvalidTenantID = "некорректный ID ресторана"
	msgInvalidQuery    = "некорректные параметры фильтра"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.ParseInt(mux.Vars(r)["tenantId"], 10, 64)
	if err != nil || tenantID <= 0 {
		h.logger.Warn("GET /reservations - Invalid tenant id: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidTenantID)
		return
	}

	req, err := parseQuery(tenantID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid query for tenant=%d: %v", tenantID, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidQuery)
		return
	}

	result, err := h.service.ListByTenant(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidQuery)
		default:
			h.logger.Error("GET /reservations - Failed to list reservations for tenant=%d: %v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
