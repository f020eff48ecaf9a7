package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	tenantcfgRepo "github.com/m04kA/RBP-ReservationService/internal/infra/storage/tenantcfg"
	"github.com/m04kA/RBP-ReservationService/internal/integrations/notifyservice"
	"github.com/m04kA/RBP-ReservationService/internal/schedule"
	"github.com/m04kA/RBP-ReservationService/pkg/types"
	"github.com/m04kA/RBP-ReservationService/pkg/tzoffset"
)

// notifyTimeout ограничение на фоновую отправку уведомления
const notifyTimeout = 5 * time.Second

// UseCase use case создания брони: нормализация времени, политики доступности,
// проверка вместимости окна и запись брони.
type UseCase struct {
	reservationRepo ReservationRepository
	configProvider  TenantConfigProvider
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// notifyClient может быть nil - тогда уведомления не отправляются.
func NewUseCase(
	reservationRepo ReservationRepository,
	configProvider TenantConfigProvider,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		configProvider:  configProvider,
		notifyClient:    notifyClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Подсчёт занятости окна и вставка выполняются в одной сериализуемой транзакции,
// чтобы два конкурентных запроса на одно окно не превысили вместимость.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: tenant=%d, date=%s, time=%s, party=%d",
		req.TenantID, req.Date.Format(domain.DateFormat), req.Time, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().UTC()

	// 3. Нормализуем локальные дату и время клиента в канонический момент UTC
	offset := tzoffset.Clamp(req.TZOffsetMinutes)
	instant, err := tzoffset.Normalize(req.Date, req.Time, offset)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to normalize time: %v", err)
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	localDate := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)
	minuteOfDay, err := req.Time.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	// 4. Получаем конфигурацию арендатора
	cfg, err := uc.configProvider.GetConfig(ctx, req.TenantID)
	if err != nil {
		if errors.Is(err, tenantcfgRepo.ErrConfigNotFound) {
			uc.logger.Warn("CreateReservation: tenant id=%d not found", req.TenantID)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("CreateReservation: failed to get tenant config id=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant config: %v", ErrInternal, err)
	}

	if !cfg.ReservationsEnabled {
		uc.logger.Warn("CreateReservation: reservations disabled for tenant id=%d", req.TenantID)
		return nil, ErrReservationsDisabled
	}

	// 5. Временные политики: прошлое, минимальный запас, максимальный горизонт
	if err := validateInstant(instant, now, cfg.LeadHours, cfg.MaxDays); err != nil {
		uc.logger.Warn("CreateReservation: instant validation failed: %v", err)
		return nil, err
	}

	// 6. Заблокированные даты и принадлежность окну расписания
	window, err := findWindow(cfg, localDate, minuteOfDay)
	if err != nil {
		uc.logger.Warn("CreateReservation: schedule validation failed for tenant=%d: %v", req.TenantID, err)
		return nil, err
	}

	// 7. Эффективная вместимость окна (слот -> арендатор -> без лимита)
	capacity, bounded := schedule.EffectiveCapacity(window, cfg.Capacity)

	var result *domain.Reservation

	// 8. Подсчёт занятости и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if bounded {
			// 8.1. Берём кандидатов в UTC диапазоне, покрывающем локальную дату
			// при любом допустимом смещении (с блокировкой FOR UPDATE)
			fromUTC, toUTC := tzoffset.DayRangeUTC(localDate)
			filter := domain.TenantReservationsFilter{
				TenantID: req.TenantID,
				FromUTC:  &fromUTC,
				ToUTC:    &toUTC,
			}

			candidates, err := uc.reservationRepo.ListByTenant(txCtx, filter)
			if err != nil {
				uc.logger.Error("CreateReservation: failed to list candidates: %v", err)
				return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
			}

			// 8.2. Точный подсчёт по локальному времени каждой брони
			occupied := countWindowReservations(candidates, window, localDate, offset)
			if occupied >= capacity {
				uc.logger.Warn("CreateReservation: window %s full, %d/%d taken",
					window, occupied, capacity)
				return ErrSlotFull
			}

			uc.logger.Info("CreateReservation: window %s available, %d/%d taken",
				window, occupied, capacity)
		}

		// 8.3. Сохраняем бронь
		rsv := &domain.Reservation{
			TenantID:        req.TenantID,
			Name:            req.Name,
			Phone:           req.Phone,
			Email:           req.Email,
			PartySize:       req.PartySize,
			ReservedAt:      instant,
			TZOffsetMinutes: &offset,
			Notes:           req.Notes,
			Status:          cfg.InitialStatus(),
		}

		created, err := uc.reservationRepo.Create(txCtx, rsv)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s status=%s",
		result.ID, result.Status)

	// 9. Уведомление отправляется в фоне и не влияет на результат
	if uc.notifyClient != nil {
		go uc.sendCreatedNotification(result, localDate, req.Time)
	}

	return &Response{
		ID:              result.ID,
		TenantID:        result.TenantID,
		Name:            result.Name,
		Phone:           result.Phone,
		Email:           result.Email,
		PartySize:       result.PartySize,
		ReservedAt:      result.ReservedAt,
		TZOffsetMinutes: offset,
		LocalDate:       localDate,
		LocalTime:       req.Time,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// sendCreatedNotification отправляет уведомление о созданной брони (fire-and-forget)
func (uc *UseCase) sendCreatedNotification(rsv *domain.Reservation, localDate time.Time, localTime types.TimeString) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	event := notifyservice.ReservationCreatedEvent{
		ReservationID: rsv.ID.String(),
		TenantID:      rsv.TenantID,
		GuestName:     rsv.Name,
		GuestPhone:    rsv.Phone,
		GuestEmail:    rsv.Email,
		PartySize:     rsv.PartySize,
		ReservedAt:    rsv.ReservedAt.Format(time.RFC3339),
		LocalDate:     localDate.Format(domain.DateFormat),
		LocalTime:     localTime.String(),
		Status:        string(rsv.Status),
	}

	if err := uc.notifyClient.SendReservationCreated(ctx, event); err != nil {
		uc.logger.Error("CreateReservation: failed to send notification for id=%s: %v", rsv.ID, err)
	}
}
