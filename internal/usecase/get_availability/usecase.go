package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	tenantcfgRepo "github.com/m04kA/RBP-ReservationService/internal/infra/storage/tenantcfg"
	"github.com/m04kA/RBP-ReservationService/internal/schedule"
	"github.com/m04kA/RBP-ReservationService/pkg/ptr"
	"github.com/m04kA/RBP-ReservationService/pkg/tzoffset"
)

// UseCase use case получения окон бронирования на дату с их занятостью.
// Используется клиентским UI для выбора времени перед созданием брони.
type UseCase struct {
	reservationRepo ReservationRepository
	configProvider  TenantConfigProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	configProvider TenantConfigProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		configProvider:  configProvider,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности.
// Прошедшие, заблокированные и закрытые даты дают пустой список окон - это
// ожидаемый ответ для UI, а не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: tenant=%d, date=%s",
		req.TenantID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию арендатора
	cfg, err := uc.configProvider.GetConfig(ctx, req.TenantID)
	if err != nil {
		if errors.Is(err, tenantcfgRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetAvailability: tenant id=%d not found", req.TenantID)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetAvailability: failed to get tenant config id=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant config: %v", ErrInternal, err)
	}

	localDate := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)
	empty := &Response{TenantID: req.TenantID, Date: localDate, Windows: []WindowAvailability{}}

	// 3. Дни без окон: приём выключен, дата заблокирована или уже прошла
	if !cfg.ReservationsEnabled {
		uc.logger.Info("GetAvailability: reservations disabled for tenant id=%d", req.TenantID)
		return empty, nil
	}
	if cfg.IsDateBlocked(localDate.Format(domain.DateFormat)) {
		uc.logger.Info("GetAvailability: date %s is blocked for tenant id=%d",
			localDate.Format(domain.DateFormat), req.TenantID)
		return empty, nil
	}

	now := uc.timeProvider.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if localDate.Before(today) {
		return empty, nil
	}

	// 4. Окна расписания на дату
	windows := schedule.ResolveWindows(cfg, localDate)
	if len(windows) == 0 {
		uc.logger.Info("GetAvailability: tenant id=%d is closed on %s",
			req.TenantID, localDate.Format(domain.DateFormat))
		return empty, nil
	}

	// 5. Кандидаты для подсчёта занятости: один запрос на весь день
	fromUTC, toUTC := tzoffset.DayRangeUTC(localDate)
	filter := domain.TenantReservationsFilter{
		TenantID: req.TenantID,
		FromUTC:  &fromUTC,
		ToUTC:    &toUTC,
	}

	candidates, err := uc.reservationRepo.ListByTenant(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 6. Занятость каждого окна
	requesterOffset := tzoffset.Clamp(req.TZOffsetMinutes)
	result := make([]WindowAvailability, 0, len(windows))

	for _, w := range windows {
		occupied := countWindowReservations(candidates, w, localDate, requesterOffset)

		wa := WindowAvailability{
			From:     w.StartTime(),
			To:       w.EndTime(),
			Occupied: occupied,
		}

		if capacity, bounded := schedule.EffectiveCapacity(w, cfg.Capacity); bounded {
			free := capacity - occupied
			if free < 0 {
				free = 0
			}
			wa.Capacity = ptr.Ptr(capacity)
			wa.Free = ptr.Ptr(free)
		}

		result = append(result, wa)
	}

	uc.logger.Info("GetAvailability: %d windows for tenant=%d, date=%s",
		len(result), req.TenantID, localDate.Format(domain.DateFormat))

	return &Response{TenantID: req.TenantID, Date: localDate, Windows: result}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// countWindowReservations подсчитывает активные брони в окне на локальную дату.
// Каждая бронь пересчитывается по её собственному сохранённому смещению.
func countWindowReservations(
	candidates []*domain.Reservation,
	window schedule.Window,
	localDate time.Time,
	requesterOffset int,
) int {
	count := 0

	for _, rsv := range candidates {
		if !rsv.IsActive() {
			continue
		}

		offset := rsv.OffsetOrDefault(requesterOffset)
		date, minute := tzoffset.LocalMinuteOfDay(rsv.ReservedAt, offset)

		if date.Equal(localDate) && window.Contains(minute) {
			count++
		}
	}

	return count
}
