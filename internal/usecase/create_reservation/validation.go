package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	"github.com/m04kA/RBP-ReservationService/internal/schedule"
	"github.com/m04kA/RBP-ReservationService/pkg/tzoffset"
)

// validateRequest валидирует структуру входных данных запроса.
// Ошибки формата никогда не доходят до политик доступности.
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.Email != nil && len(*req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateInstant применяет временные политики к каноническому моменту брони.
// Порядок проверок фиксирован: прошлое -> минимальный запас -> максимальный горизонт.
func validateInstant(instant, now time.Time, leadHours, maxDays int) error {
	if instant.Before(now) {
		return ErrInPast
	}

	// Граница включается: бронь ровно через leadHours часов допустима
	if leadHours > 0 && instant.Before(now.Add(time.Duration(leadHours)*time.Hour)) {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooSoon, leadHours)
	}

	if maxDays > 0 && instant.After(now.AddDate(0, 0, maxDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrTooFar, maxDays)
	}

	return nil
}

// findWindow проверяет заблокированные даты и ищет окно расписания,
// содержащее запрошенную локальную минуту суток.
// Возвращает найденное окно - оно нужно дальше для проверки вместимости.
func findWindow(cfg *domain.TenantReservationConfig, localDate time.Time, minuteOfDay int) (schedule.Window, error) {
	if cfg.IsDateBlocked(localDate.Format(domain.DateFormat)) {
		return schedule.Window{}, ErrDateBlocked
	}

	windows := schedule.ResolveWindows(cfg, localDate)

	window, ok := schedule.Match(windows, minuteOfDay)
	if !ok {
		return schedule.Window{}, ErrOutsideSchedule
	}

	return window, nil
}

// countWindowReservations подсчитывает активные брони, попадающие в то же окно
// на ту же локальную дату.
//
// Локальное время каждой брони пересчитывается по её собственному сохранённому
// смещению (со смещением текущего запроса как fallback для старых записей):
// гости могли бронировать из разных часовых поясов, и только сравнение
// локального времени даёт семантику "тот же день, то же окно".
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
