package create_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RBP-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/RBP-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTenantID      = "некорректный ID ресторана"
	msgInvalidDateTime      = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput         = "некорректные данные бронирования"
	msgTenantNotFound       = "ресторан не найден"
	msgReservationsDisabled = "ресторан не принимает бронирования"
	msgInPast               = "запрошенное время уже прошло"
	msgTooSoon              = "слишком поздно для бронирования на это время"
	msgTooFar               = "дата бронирования слишком далеко в будущем"
	msgDateBlocked          = "в выбранную дату бронирования не принимаются"
	msgOutsideSchedule      = "выбранное время вне расписания ресторана"
	msgSlotFull             = "на выбранное время свободных мест нет"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tenants/{tenantId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.ParseInt(mux.Vars(r)["tenantId"], 10, 64)
	if err != nil || tenantID <= 0 {
		h.logger.Warn("POST /reservations - Invalid tenant id: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidTenantID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /reservations - Slot full: tenant=%d, date=%s, time=%s",
				tenantID, req.Date, req.Time)
			handlers.RespondConflict(w, handlers.CodeSlotFull, msgSlotFull)

		case errors.Is(err, createReservation.ErrTenantNotFound):
			h.logger.Warn("POST /reservations - Tenant not found: tenant=%d", tenantID)
			handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)

		case errors.Is(err, createReservation.ErrReservationsDisabled):
			h.logger.Warn("POST /reservations - Reservations disabled: tenant=%d", tenantID)
			handlers.RespondBadRequest(w, handlers.CodeReservationsDisabled, msgReservationsDisabled)

		case errors.Is(err, createReservation.ErrInPast):
			handlers.RespondBadRequest(w, handlers.CodeInPast, msgInPast)

		case errors.Is(err, createReservation.ErrTooSoon):
			handlers.RespondBadRequest(w, handlers.CodeTooSoon, msgTooSoon)

		case errors.Is(err, createReservation.ErrTooFar):
			handlers.RespondBadRequest(w, handlers.CodeTooFar, msgTooFar)

		case errors.Is(err, createReservation.ErrDateBlocked):
			handlers.RespondBadRequest(w, handlers.CodeDateBlocked, msgDateBlocked)

		case errors.Is(err, createReservation.ErrOutsideSchedule):
			handlers.RespondBadRequest(w, handlers.CodeOutsideSchedule, msgOutsideSchedule)

		case errors.Is(err, createReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.CodeInvalidInput, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: tenant=%d, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, tenant=%d, status=%s",
		result.ID, tenantID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
