package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/RBP-ReservationService/internal/api/handlers"
	"github.com/m04kA/RBP-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/RBP-ReservationService/internal/usecase/get_availability"
)

const (
	msgInvalidTenantID = "некорректный ID ресторана"
	msgInvalidDate     = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidOffset   = "некорректное смещение часового пояса"
	msgTenantNotFound  = "ресторан не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/availability?date=YYYY-MM-DD&tzOffsetMinutes=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.ParseInt(mux.Vars(r)["tenantId"], 10, 64)
	if err != nil || tenantID <= 0 {
		h.logger.Warn("GET /availability - Invalid tenant id: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidTenantID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date for tenant=%d: %v", tenantID, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidDate)
		return
	}

	req := &getAvailability.Request{
		TenantID: tenantID,
		Date:     date,
	}

	if rawOffset := r.URL.Query().Get("tzOffsetMinutes"); rawOffset != "" {
		offset, err := strconv.Atoi(rawOffset)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid tz offset for tenant=%d: %v", tenantID, err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidOffset)
			return
		}
		req.TZOffsetMinutes = &offset
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrTenantNotFound):
			handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidDate)
		default:
			h.logger.Error("GET /availability - Failed to get availability for tenant=%d: %v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
