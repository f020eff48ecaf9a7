package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/RBP-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/RBP-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/RBP-ReservationService/pkg/ptr"
)

type fakeRepo struct {
	byID map[uuid.UUID]*domain.Reservation
	list []*domain.Reservation
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	rsv, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return rsv, nil
}

func (f *fakeRepo) ListByTenant(_ context.Context, filter domain.TenantReservationsFilter) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, rsv := range f.list {
		if rsv.TenantID != filter.TenantID {
			continue
		}
		if !filter.IncludeCancelled && rsv.IsCancelled() {
			continue
		}
		if filter.Status != nil && rsv.Status != *filter.Status {
			continue
		}
		result = append(result, rsv)
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ReservationStatus) error {
	rsv, ok := f.byID[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	rsv.Status = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleReservation(id uuid.UUID) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		TenantID:        1,
		Name:            "Иван Петров",
		Phone:           "+79001234567",
		PartySize:       4,
		ReservedAt:      time.Date(2025, 6, 10, 16, 30, 0, 0, time.UTC),
		TZOffsetMinutes: ptr.Ptr(-180),
		Status:          domain.StatusPending,
		CreatedAt:       time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetByID(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{byID: map[uuid.UUID]*domain.Reservation{id: sampleReservation(id)}}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id.String(), resp.ID)
	// Локальное время восстановлено по сохранённому смещению
	assert.Equal(t, "2025-06-10", resp.LocalDate)
	assert.Equal(t, "19:30", resp.LocalTime)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestListByTenant(t *testing.T) {
	pending := sampleReservation(uuid.New())
	cancelled := sampleReservation(uuid.New())
	cancelled.Status = domain.StatusCancelled

	repo := &fakeRepo{list: []*domain.Reservation{pending, cancelled}}
	svc := NewService(repo, nil, nopLogger{})

	t.Run("cancelled excluded by default", func(t *testing.T) {
		resp, err := svc.ListByTenant(context.Background(), &models.ListReservationsRequest{TenantID: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("include cancelled", func(t *testing.T) {
		resp, err := svc.ListByTenant(context.Background(), &models.ListReservationsRequest{
			TenantID:         1,
			IncludeCancelled: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("status filter", func(t *testing.T) {
		status := "cancelled"
		resp, err := svc.ListByTenant(context.Background(), &models.ListReservationsRequest{
			TenantID:         1,
			Status:           &status,
			IncludeCancelled: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "cancelled", resp.Reservations[0].Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		status := "approved"
		_, err := svc.ListByTenant(context.Background(), &models.ListReservationsRequest{
			TenantID: 1,
			Status:   &status,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid tenant", func(t *testing.T) {
		_, err := svc.ListByTenant(context.Background(), &models.ListReservationsRequest{TenantID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestChangeStatus(t *testing.T) {
	t.Run("pending to confirmed", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeRepo{byID: map[uuid.UUID]*domain.Reservation{id: sampleReservation(id)}}
		svc := NewService(repo, nil, nopLogger{})

		resp, err := svc.ChangeStatus(context.Background(), id, &models.ChangeStatusRequest{Status: "confirmed"})

		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, domain.StatusConfirmed, repo.byID[id].Status)
	})

	t.Run("cancelled can be reinstated", func(t *testing.T) {
		// Переходы статусов не ограничиваются
		id := uuid.New()
		rsv := sampleReservation(id)
		rsv.Status = domain.StatusCancelled
		repo := &fakeRepo{byID: map[uuid.UUID]*domain.Reservation{id: rsv}}
		svc := NewService(repo, nil, nopLogger{})

		resp, err := svc.ChangeStatus(context.Background(), id, &models.ChangeStatusRequest{Status: "pending"})

		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeRepo{byID: map[uuid.UUID]*domain.Reservation{id: sampleReservation(id)}}
		svc := NewService(repo, nil, nopLogger{})

		_, err := svc.ChangeStatus(context.Background(), id, &models.ChangeStatusRequest{Status: "approved"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&fakeRepo{byID: map[uuid.UUID]*domain.Reservation{}}, nil, nopLogger{})

		_, err := svc.ChangeStatus(context.Background(), uuid.New(), &models.ChangeStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestFromDomainReservation_NilOffset(t *testing.T) {
	rsv := sampleReservation(uuid.New())
	rsv.TZOffsetMinutes = nil

	resp := models.FromDomainReservation(rsv)

	// Старые записи без смещения отображаются как UTC
	assert.Equal(t, "16:30", resp.LocalTime)
	assert.Equal(t, "2025-06-10", resp.LocalDate)
}
