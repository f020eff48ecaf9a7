package create_reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	"github.com/m04kA/RBP-ReservationService/internal/schedule"
	"github.com/m04kA/RBP-ReservationService/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		TenantID:  1,
		Name:      "Иван Петров",
		Phone:     "+79001234567",
		PartySize: 4,
		Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:      "19:30",
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, validateRequest(validRequest()))
	})

	t.Run("non-positive tenant", func(t *testing.T) {
		req := validRequest()
		req.TenantID = 0
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("empty name", func(t *testing.T) {
		req := validRequest()
		req.Name = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("empty phone", func(t *testing.T) {
		req := validRequest()
		req.Phone = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("party size out of range", func(t *testing.T) {
		req := validRequest()
		req.PartySize = 0
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

		req.PartySize = domain.MaxPartySize + 1
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing date", func(t *testing.T) {
		req := validRequest()
		req.Date = time.Time{}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("malformed time", func(t *testing.T) {
		req := validRequest()
		req.Time = "25:99"
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}

func TestValidateInstant(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("in the past", func(t *testing.T) {
		err := validateInstant(now.Add(-time.Minute), now, 0, 0)
		assert.ErrorIs(t, err, ErrInPast)
	})

	t.Run("past check runs before lead time check", func(t *testing.T) {
		err := validateInstant(now.Add(-time.Minute), now, 24, 0)
		assert.ErrorIs(t, err, ErrInPast)
	})

	t.Run("too soon", func(t *testing.T) {
		err := validateInstant(now.Add(time.Hour), now, 2, 0)
		assert.ErrorIs(t, err, ErrTooSoon)
	})

	t.Run("exactly at lead boundary is accepted", func(t *testing.T) {
		err := validateInstant(now.Add(2*time.Hour), now, 2, 0)
		assert.NoError(t, err)
	})

	t.Run("too far", func(t *testing.T) {
		err := validateInstant(now.AddDate(0, 0, 31), now, 0, 30)
		assert.ErrorIs(t, err, ErrTooFar)
	})

	t.Run("zero thresholds disable checks", func(t *testing.T) {
		err := validateInstant(now.AddDate(2, 0, 0), now, 0, 0)
		assert.NoError(t, err)
	})
}

func TestFindWindow(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC) // вторник
	cfg := &domain.TenantReservationConfig{
		OpeningHours: domain.WeeklyHours{
			"tuesday": {{Open: "18:00", Close: "21:00"}},
		},
		BlockedDates: []string{"2025-06-11"},
	}

	t.Run("inside window", func(t *testing.T) {
		w, err := findWindow(cfg, date, 19*60+30)
		require.NoError(t, err)
		assert.Equal(t, 18*60, w.StartMinute)
	})

	t.Run("closing time is outside the window", func(t *testing.T) {
		_, err := findWindow(cfg, date, 21*60)
		assert.ErrorIs(t, err, ErrOutsideSchedule)
	})

	t.Run("blocked date wins over schedule", func(t *testing.T) {
		blocked := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
		_, err := findWindow(cfg, blocked, 19*60)
		assert.ErrorIs(t, err, ErrDateBlocked)
	})
}

func TestCountWindowReservations(t *testing.T) {
	window := schedule.Window{StartMinute: 18 * 60, EndMinute: 21 * 60}
	localDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Три брони на локальные 19:30 10 июня из разных часовых поясов
	// плюс отменённая и одна вне окна
	reservations := []*domain.Reservation{
		{ReservedAt: time.Date(2025, 6, 10, 16, 30, 0, 0, time.UTC), TZOffsetMinutes: ptr.Ptr(-180), Status: domain.StatusPending},
		{ReservedAt: time.Date(2025, 6, 11, 0, 30, 0, 0, time.UTC), TZOffsetMinutes: ptr.Ptr(300), Status: domain.StatusConfirmed},
		{ReservedAt: time.Date(2025, 6, 10, 19, 30, 0, 0, time.UTC), TZOffsetMinutes: ptr.Ptr(0), Status: domain.StatusPending},
		{ReservedAt: time.Date(2025, 6, 10, 16, 30, 0, 0, time.UTC), TZOffsetMinutes: ptr.Ptr(-180), Status: domain.StatusCancelled},
		{ReservedAt: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC), TZOffsetMinutes: ptr.Ptr(0), Status: domain.StatusPending},
	}

	count := countWindowReservations(reservations, window, localDate, 0)
	assert.Equal(t, 3, count)
}

func TestCountWindowReservations_FallbackOffset(t *testing.T) {
	window := schedule.Window{StartMinute: 18 * 60, EndMinute: 21 * 60}
	localDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Старая запись без смещения: пересчитывается по смещению текущего запроса
	reservations := []*domain.Reservation{
		{ReservedAt: time.Date(2025, 6, 10, 16, 30, 0, 0, time.UTC), Status: domain.StatusPending},
	}

	assert.Equal(t, 1, countWindowReservations(reservations, window, localDate, -180))
	assert.Equal(t, 0, countWindowReservations(reservations, window, localDate, 0))
}
