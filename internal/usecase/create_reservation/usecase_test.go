package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	tenantcfgRepo "github.com/m04kA/RBP-ReservationService/internal/infra/storage/tenantcfg"
	"github.com/m04kA/RBP-ReservationService/pkg/ptr"
	"github.com/m04kA/RBP-ReservationService/pkg/types"
)

// --- фейки ---

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	listCalled   bool
}

func (f *fakeReservationRepo) Create(_ context.Context, rsv *domain.Reservation) (*domain.Reservation, error) {
	created := *rsv
	created.ID = uuid.New()
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	f.reservations = append(f.reservations, &created)
	return &created, nil
}

func (f *fakeReservationRepo) ListByTenant(_ context.Context, filter domain.TenantReservationsFilter) ([]*domain.Reservation, error) {
	f.listCalled = true

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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

// --- окружение теста ---

// testNow полдень UTC 9 июня 2025; брони делаются на вторник 10 июня
var testNow = time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

func defaultConfig() *domain.TenantReservationConfig {
	return &domain.TenantReservationConfig{
		TenantID: 1,
		OpeningHours: domain.WeeklyHours{
			"tuesday": {{Open: "18:00", Close: "21:00"}},
		},
		Capacity:            ptr.Ptr(2),
		ReservationsEnabled: true,
	}
}

func newTestUseCase(repo *fakeReservationRepo, cfg *domain.TenantReservationConfig) *UseCase {
	uc := NewUseCase(repo, &staticConfigProvider{cfg: cfg}, nil, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func newRequest(wallTime types.TimeString, offset *int) *Request {
	return &Request{
		TenantID:        1,
		Name:            "Иван Петров",
		Phone:           "+79001234567",
		PartySize:       2,
		Date:            time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:            wallTime,
		TZOffsetMinutes: offset,
	}
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, defaultConfig())

	resp, err := uc.Execute(context.Background(), newRequest("19:30", ptr.Ptr(-180)))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Московские локальные 19:30 = 16:30 UTC
	assert.Equal(t, time.Date(2025, 6, 10, 16, 30, 0, 0, time.UTC), resp.ReservedAt)
	assert.Equal(t, -180, resp.TZOffsetMinutes)
	assert.Equal(t, types.TimeString("19:30"), resp.LocalTime)

	require.Len(t, repo.reservations, 1)
	require.NotNil(t, repo.reservations[0].TZOffsetMinutes)
	assert.Equal(t, -180, *repo.reservations[0].TZOffsetMinutes)
}

func TestExecute_AutoConfirm(t *testing.T) {
	cfg := defaultConfig()
	cfg.AutoConfirm = true
	uc := newTestUseCase(&fakeReservationRepo{}, cfg)

	resp, err := uc.Execute(context.Background(), newRequest("19:30", nil))

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_SlotFull(t *testing.T) {
	cfg := defaultConfig() // вместимость 2
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, cfg)

	for i := 0; i < 2; i++ {
		_, err := uc.Execute(context.Background(), newRequest("19:30", ptr.Ptr(0)))
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), newRequest("19:30", ptr.Ptr(0)))
	assert.ErrorIs(t, err, ErrSlotFull)

	// Другое окно того же дня не занято этим лимитом
	assert.Len(t, repo.reservations, 2)
}

func TestExecute_SlotFull_AcrossTimezones(t *testing.T) {
	cfg := defaultConfig()
	cfg.Capacity = ptr.Ptr(1)
	uc := newTestUseCase(&fakeReservationRepo{}, cfg)

	// Московский гость занимает окно на локальные 19:30
	_, err := uc.Execute(context.Background(), newRequest("19:30", ptr.Ptr(-180)))
	require.NoError(t, err)

	// Гость из Нью-Йорка на те же локальные 19:30: иной момент UTC,
	// но то же окно на ту же локальную дату
	_, err = uc.Execute(context.Background(), newRequest("19:30", ptr.Ptr(300)))
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_CancelledDoesNotCount(t *testing.T) {
	cfg := defaultConfig()
	cfg.Capacity = ptr.Ptr(1)
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, cfg)

	_, err := uc.Execute(context.Background(), newRequest("19:30", ptr.Ptr(0)))
	require.NoError(t, err)

	// Отмена освобождает место
	repo.reservations[0].Status = domain.StatusCancelled

	_, err = uc.Execute(context.Background(), newRequest("19:30", ptr.Ptr(0)))
	assert.NoError(t, err)
}

func TestExecute_UnlimitedCapacitySkipsCounting(t *testing.T) {
	cfg := defaultConfig()
	cfg.Capacity = nil
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, cfg)

	_, err := uc.Execute(context.Background(), newRequest("19:30", nil))

	require.NoError(t, err)
	assert.False(t, repo.listCalled)
}

func TestExecute_SlotCapacityWinsOverTenantCapacity(t *testing.T) {
	cfg := defaultConfig()
	cfg.Capacity = ptr.Ptr(100)
	cfg.Slots = []domain.ReservationSlot{
		{From: "18:00", To: "21:00", Capacity: ptr.Ptr(1)},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, cfg)

	_, err := uc.Execute(context.Background(), newRequest("19:30", nil))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), newRequest("19:30", nil))
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_PolicyErrors(t *testing.T) {
	t.Run("tenant not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeReservationRepo{}, nil)
		uc.configProvider = &staticConfigProvider{err: tenantcfgRepo.ErrConfigNotFound}

		_, err := uc.Execute(context.Background(), newRequest("19:30", nil))
		assert.ErrorIs(t, err, ErrTenantNotFound)
	})

	t.Run("reservations disabled", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.ReservationsEnabled = false
		uc := newTestUseCase(&fakeReservationRepo{}, cfg)

		_, err := uc.Execute(context.Background(), newRequest("19:30", nil))
		assert.ErrorIs(t, err, ErrReservationsDisabled)
	})

	t.Run("in the past", func(t *testing.T) {
		uc := newTestUseCase(&fakeReservationRepo{}, defaultConfig())

		req := newRequest("19:30", nil)
		req.Date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInPast)
	})

	t.Run("too soon", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.LeadHours = 48
		uc := newTestUseCase(&fakeReservationRepo{}, cfg)

		_, err := uc.Execute(context.Background(), newRequest("19:30", ptr.Ptr(0)))
		assert.ErrorIs(t, err, ErrTooSoon)
	})

	t.Run("too far", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.MaxDays = 7
		// расписание нужно на понедельник 30 июня
		cfg.OpeningHours["monday"] = cfg.OpeningHours["tuesday"]
		uc := newTestUseCase(&fakeReservationRepo{}, cfg)

		req := newRequest("19:30", nil)
		req.Date = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTooFar)
	})

	t.Run("blocked date", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.BlockedDates = []string{"2025-06-10"}
		uc := newTestUseCase(&fakeReservationRepo{}, cfg)

		_, err := uc.Execute(context.Background(), newRequest("19:30", nil))
		assert.ErrorIs(t, err, ErrDateBlocked)
	})

	t.Run("outside schedule", func(t *testing.T) {
		uc := newTestUseCase(&fakeReservationRepo{}, defaultConfig())

		// 21:00 - верхняя граница окна 18:00-21:00, не включается
		_, err := uc.Execute(context.Background(), newRequest("21:00", nil))
		assert.ErrorIs(t, err, ErrOutsideSchedule)
	})

	t.Run("closed day", func(t *testing.T) {
		uc := newTestUseCase(&fakeReservationRepo{}, defaultConfig())

		// среда 11 июня: расписание задано только на вторник
		req := newRequest("19:30", nil)
		req.Date = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideSchedule)
	})
}

func TestExecute_OutOfRangeOffsetTreatedAsZero(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, defaultConfig())

	resp, err := uc.Execute(context.Background(), newRequest("19:30", ptr.Ptr(100000)))

	require.NoError(t, err)
	assert.Equal(t, 0, resp.TZOffsetMinutes)
	assert.Equal(t, time.Date(2025, 6, 10, 19, 30, 0, 0, time.UTC), resp.ReservedAt)
}
