package domain

import (
	"strings"
	"time"

	"github.com/m04kA/RBP-ReservationService/pkg/types"
)

// TimeRange интервал рабочих часов в пределах дня
type TimeRange struct {
	Open  types.TimeString `json:"open"`
	Close types.TimeString `json:"close"`
}

// ReservationSlot явно заданный админом слот бронирования.
// Имеет приоритет над обычными рабочими часами и может нести собственную вместимость.
type ReservationSlot struct {
	From     types.TimeString `json:"from"`
	To       types.TimeString `json:"to"`
	Capacity *int             `json:"capacity,omitempty"`
}

// WeeklyHours рабочие часы по дням недели.
// Ключ - название дня в нижнем регистре ("monday" ... "sunday"),
// пустой список = закрыто в этот день.
type WeeklyHours map[string][]TimeRange

// TenantReservationConfig конфигурация бронирования одного арендатора (ресторана)
type TenantReservationConfig struct {
	TenantID int64

	// OpeningHours обычные рабочие часы; используются для бронирования,
	// только когда Slots пуст
	OpeningHours WeeklyHours

	// Slots кастомные слоты; если заданы, полностью замещают OpeningHours
	// для целей бронирования
	Slots []ReservationSlot

	// Capacity вместимость по умолчанию (количество бронирований на окно),
	// nil или <= 0 = без ограничения
	Capacity *int

	// BlockedDates даты в формате YYYY-MM-DD, в которые бронирования не принимаются
	BlockedDates []string

	// LeadHours минимальное количество часов между "сейчас" и временем брони, 0 = без порога
	LeadHours int

	// MaxDays максимальное количество дней вперёд, 0 = без ограничения
	MaxDays int

	// AutoConfirm если true, новые брони создаются сразу в статусе confirmed
	AutoConfirm bool

	// ReservationsEnabled выключатель приёма броней для арендатора
	ReservationsEnabled bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCustomSlots returns true if custom reservation slots are configured
func (c *TenantReservationConfig) HasCustomSlots() bool {
	return len(c.Slots) > 0
}

// IsDateBlocked проверяет, заблокирована ли дата (формат YYYY-MM-DD)
func (c *TenantReservationConfig) IsDateBlocked(date string) bool {
	for _, blocked := range c.BlockedDates {
		if blocked == date {
			return true
		}
	}
	return false
}

// HoursForWeekday возвращает рабочие часы для дня недели
func (c *TenantReservationConfig) HoursForWeekday(weekday time.Weekday) []TimeRange {
	if c.OpeningHours == nil {
		return nil
	}
	return c.OpeningHours[strings.ToLower(weekday.String())]
}

// InitialStatus возвращает статус, с которым создаётся новая бронь
func (c *TenantReservationConfig) InitialStatus() ReservationStatus {
	if c.AutoConfirm {
		return StatusConfirmed
	}
	return StatusPending
}
