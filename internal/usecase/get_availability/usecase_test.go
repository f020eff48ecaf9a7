package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	tenantcfgRepo "github.com/m04kA/RBP-ReservationService/internal/infra/storage/tenantcfg"
	"github.com/m04kA/RBP-ReservationService/pkg/ptr"
	"github.com/m04kA/RBP-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) ListByTenant(_ context.Context, filter domain.TenantReservationsFilter) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, rsv := range f.reservations {
		if rsv.TenantID != filter.TenantID {
			continue
		}
		if filter.FromUTC != nil && rsv.ReservedAt.Before(*filter.FromUTC) {
			continue
		}
		if filter.ToUTC != nil && !rsv.ReservedAt.Before(*filter.ToUTC) {
			continue
		}
		result = append(result, rsv)
	}
	return result, nil
}

type staticConfigProvider struct {
	cfg *domain.TenantReservationConfig
	err error
}

func (p *staticConfigProvider) GetConfig(_ context.Context, _ int64) (*domain.TenantReservationConfig, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.cfg, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

func defaultConfig() *domain.TenantReservationConfig {
	return &domain.TenantReservationConfig{
		TenantID: 1,
		OpeningHours: domain.WeeklyHours{
			"tuesday": {
				{Open: "12:00", Close: "15:00"},
				{Open: "18:00", Close: "21:00"},
			},
		},
		Capacity:            ptr.Ptr(2),
		ReservationsEnabled: true,
	}
}

func newTestUseCase(repo *fakeReservationRepo, cfg *domain.TenantReservationConfig) *UseCase {
	uc := NewUseCase(repo, &staticConfigProvider{cfg: cfg}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func newRequest() *Request {
	return &Request{
		TenantID: 1,
		Date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestExecute_WindowsWithOccupancy(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			// Локальные 19:30 из Москвы и Нью-Йорка: оба в вечернем окне 10 июня
			{TenantID: 1, ReservedAt: time.Date(2025, 6, 10, 16, 30, 0, 0, time.UTC), TZOffsetMinutes: ptr.Ptr(-180), Status: domain.StatusPending},
			{TenantID: 1, ReservedAt: time.Date(2025, 6, 11, 0, 30, 0, 0, time.UTC), TZOffsetMinutes: ptr.Ptr(300), Status: domain.StatusConfirmed},
			// Отменённая не считается
			{TenantID: 1, ReservedAt: time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC), TZOffsetMinutes: ptr.Ptr(0), Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(repo, defaultConfig())

	resp, err := uc.Execute(context.Background(), newRequest())

	require.NoError(t, err)
	require.Len(t, resp.Windows, 2)

	lunch := resp.Windows[0]
	assert.Equal(t, types.TimeString("12:00"), lunch.From)
	assert.Equal(t, 0, lunch.Occupied)
	require.NotNil(t, lunch.Free)
	assert.Equal(t, 2, *lunch.Free)

	dinner := resp.Windows[1]
	assert.Equal(t, types.TimeString("18:00"), dinner.From)
	assert.Equal(t, types.TimeString("21:00"), dinner.To)
	assert.Equal(t, 2, dinner.Occupied)
	require.NotNil(t, dinner.Capacity)
	assert.Equal(t, 2, *dinner.Capacity)
	require.NotNil(t, dinner.Free)
	assert.Equal(t, 0, *dinner.Free)
}

func TestExecute_UnlimitedCapacity(t *testing.T) {
	cfg := defaultConfig()
	cfg.Capacity = nil
	uc := newTestUseCase(&fakeReservationRepo{}, cfg)

	resp, err := uc.Execute(context.Background(), newRequest())

	require.NoError(t, err)
	require.Len(t, resp.Windows, 2)
	assert.Nil(t, resp.Windows[0].Capacity)
	assert.Nil(t, resp.Windows[0].Free)
}

func TestExecute_EmptyWindowDays(t *testing.T) {
	t.Run("reservations disabled", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.ReservationsEnabled = false
		uc := newTestUseCase(&fakeReservationRepo{}, cfg)

		resp, err := uc.Execute(context.Background(), newRequest())
		require.NoError(t, err)
		assert.Empty(t, resp.Windows)
	})

	t.Run("blocked date", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.BlockedDates = []string{"2025-06-10"}
		uc := newTestUseCase(&fakeReservationRepo{}, cfg)

		resp, err := uc.Execute(context.Background(), newRequest())
		require.NoError(t, err)
		assert.Empty(t, resp.Windows)
	})

	t.Run("date in the past", func(t *testing.T) {
		uc := newTestUseCase(&fakeReservationRepo{}, defaultConfig())

		req := newRequest()
		req.Date = time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, resp.Windows)
	})

	t.Run("closed day", func(t *testing.T) {
		uc := newTestUseCase(&fakeReservationRepo{}, defaultConfig())

		// среда: расписание задано только на вторник
		req := newRequest()
		req.Date = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, resp.Windows)
	})
}

func TestExecute_TenantNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, nil)
	uc.configProvider = &staticConfigProvider{err: tenantcfgRepo.ErrConfigNotFound}

	_, err := uc.Execute(context.Background(), newRequest())
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, defaultConfig())

	_, err := uc.Execute(context.Background(), &Request{TenantID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TenantID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
