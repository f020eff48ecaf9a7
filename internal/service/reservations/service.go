package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/RBP-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/RBP-ReservationService/internal/integrations/notifyservice"
	"github.com/m04kA/RBP-ReservationService/internal/service/reservations/models"
)

// notifyTimeout ограничение на фоновую отправку уведомления
const notifyTimeout = 5 * time.Second

// Service сервис административных операций над бронированиями.
// Смена статуса - прямое присваивание для внешнего workflow:
// вместимость окна здесь не перепроверяется, она контролируется
// только в момент создания брони.
type Service struct {
	reservationRepo ReservationRepository
	notifyClient    NotifyServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// notifyClient может быть nil - тогда уведомления не отправляются.
func NewService(
	reservationRepo ReservationRepository,
	notifyClient NotifyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		notifyClient:    notifyClient,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	rsv, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(rsv), nil
}

// ListByTenant получает бронирования арендатора, упорядоченные по reserved_at.
// Валидация доступности здесь не выполняется - это просмотр для администратора.
func (s *Service) ListByTenant(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByTenant: fetching reservations for tenant=%d", req.TenantID)

	if req.TenantID <= 0 {
		return nil, fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	filter := domain.TenantReservationsFilter{
		TenantID:         req.TenantID,
		FromUTC:          req.FromDate,
		ToUTC:            req.ToDate,
		IncludeCancelled: req.IncludeCancelled,
	}

	if req.Status != nil {
		status, ok := domain.ParseReservationStatus(*req.Status)
		if !ok {
			s.logger.Warn("ListByTenant: invalid status=%s for tenant=%d", *req.Status, req.TenantID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	reservations, err := s.reservationRepo.ListByTenant(ctx, filter)
	if err != nil {
		s.logger.Error("ListByTenant: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: ListByTenant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByTenant: successfully fetched %d reservations for tenant=%d",
		len(reservations), req.TenantID)
	return models.FromDomainReservationList(reservations), nil
}

// ChangeStatus меняет статус брони (pending/confirmed/cancelled).
// Движок не ограничивает переходы и не пересчитывает вместимость:
// отмена неявно освобождает место для будущих броней, но уже принятые
// брони задним числом не инвалидируются.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, req *models.ChangeStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("ChangeStatus: reservation id=%s -> status=%s", id, req.Status)

	newStatus, ok := domain.ParseReservationStatus(req.Status)
	if !ok {
		s.logger.Warn("ChangeStatus: invalid status=%s for reservation id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	rsv, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("ChangeStatus: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("ChangeStatus: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
	}

	oldStatus := rsv.Status

	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("ChangeStatus: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
	}

	rsv.Status = newStatus

	s.logger.Info("ChangeStatus: reservation id=%s changed %s -> %s", id, oldStatus, newStatus)

	// Уведомление отправляется в фоне и не влияет на результат
	if s.notifyClient != nil && oldStatus != newStatus {
		go s.sendStatusNotification(rsv, oldStatus)
	}

	return models.FromDomainReservation(rsv), nil
}

// sendStatusNotification отправляет уведомление о смене статуса (fire-and-forget)
func (s *Service) sendStatusNotification(rsv *domain.Reservation, oldStatus domain.ReservationStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	event := notifyservice.StatusChangedEvent{
		ReservationID: rsv.ID.String(),
		TenantID:      rsv.TenantID,
		GuestPhone:    rsv.Phone,
		OldStatus:     string(oldStatus),
		NewStatus:     string(rsv.Status),
	}

	if err := s.notifyClient.SendStatusChanged(ctx, event); err != nil {
		s.logger.Error("ChangeStatus: failed to send notification for id=%s: %v", rsv.ID, err)
	}
}
