package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RBP-ReservationService/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	TenantID int64 // ID арендатора (ресторана)

	// Контактные данные гостя
	Name  string
	Phone string
	Email *string

	PartySize int // Количество гостей

	Date time.Time        // Локальная дата брони (без времени)
	Time types.TimeString // Локальное время брони (например, "19:30")

	// TZOffsetMinutes смещение часового пояса клиента в минутах
	// (соглашение JS getTimezoneOffset). nil или выход за +-14ч трактуются как 0.
	TZOffsetMinutes *int

	Notes *string // Пожелания гостя (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID        uuid.UUID // ID созданной брони
	TenantID  int64     // ID арендатора
	Name      string    // Имя гостя
	Phone     string    // Телефон гостя
	Email     *string   // Email гостя
	PartySize int       // Количество гостей

	ReservedAt      time.Time        // Канонический момент брони (UTC)
	TZOffsetMinutes int              // Применённое смещение
	LocalDate       time.Time        // Локальная дата брони
	LocalTime       types.TimeString // Локальное время брони

	Status string  // Статус брони (pending или confirmed)
	Notes  *string // Пожелания

	CreatedAt time.Time // Время создания
}
