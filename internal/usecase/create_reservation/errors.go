package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrTenantNotFound возвращается, когда арендатор не найден
	ErrTenantNotFound = errors.New("create_reservation: tenant not found")

	// ErrReservationsDisabled возвращается, когда приём броней у арендатора выключен
	ErrReservationsDisabled = errors.New("create_reservation: reservations are disabled for tenant")

	// ErrInPast возвращается, когда запрошенный момент времени уже прошёл
	ErrInPast = errors.New("create_reservation: requested time is in the past")

	// ErrTooSoon возвращается при нарушении минимального времени до брони (lead_hours)
	ErrTooSoon = errors.New("create_reservation: requested time violates lead time")

	// ErrTooFar возвращается, когда дата превышает ограничение max_days
	ErrTooFar = errors.New("create_reservation: requested date is too far in the future")

	// ErrDateBlocked возвращается, когда дата находится в списке заблокированных
	ErrDateBlocked = errors.New("create_reservation: date is blocked")

	// ErrOutsideSchedule возвращается, когда время не попадает ни в одно окно расписания
	ErrOutsideSchedule = errors.New("create_reservation: time is outside the schedule")

	// ErrSlotFull возвращается, когда вместимость окна исчерпана
	ErrSlotFull = errors.New("create_reservation: slot is full")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
