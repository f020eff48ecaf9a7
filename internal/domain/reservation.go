package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ParseReservationStatus валидирует и конвертирует строку в ReservationStatus
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return ReservationStatus(s), true
	default:
		return "", false
	}
}

// Reservation represents a table reservation in the system
type Reservation struct {
	ID       uuid.UUID
	TenantID int64

	// Контактные данные гостя
	Name  string
	Phone string
	Email *string

	PartySize int

	// ReservedAt канонический момент времени в UTC
	ReservedAt time.Time

	// TZOffsetMinutes смещение локального времени клиента на момент создания
	// (соглашение JS getTimezoneOffset: local = UTC - offset).
	// nil у старых записей - при восстановлении локального времени для отображения
	// считается равным 0.
	TZOffsetMinutes *int

	Notes  *string
	Status ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies capacity
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// OffsetOrDefault возвращает сохранённое смещение или fallback для старых записей
func (r *Reservation) OffsetOrDefault(fallback int) int {
	if r.TZOffsetMinutes == nil {
		return fallback
	}
	return *r.TZOffsetMinutes
}

// TenantReservationsFilter фильтр для выборки бронирований арендатора
type TenantReservationsFilter struct {
	TenantID        int64              // Обязательный параметр
	FromUTC         *time.Time         // Начало диапазона reserved_at (опционально)
	ToUTC           *time.Time         // Конец диапазона reserved_at, не включается (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool              // Включать ли отменённые бронирования
}
