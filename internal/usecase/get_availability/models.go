package get_availability

import (
	"time"

	"github.com/m04kA/RBP-ReservationService/pkg/types"
)

// Request модель запроса доступности на дату
type Request struct {
	TenantID int64     // ID арендатора
	Date     time.Time // Локальная дата (без времени)

	// TZOffsetMinutes смещение часового пояса клиента; используется как fallback
	// при пересчёте локального времени старых записей без сохранённого смещения
	TZOffsetMinutes *int
}

// Response модель ответа с окнами бронирования на дату
type Response struct {
	TenantID int64     // ID арендатора
	Date     time.Time // Дата, на которую запрашивалась доступность
	Windows  []WindowAvailability
}

// WindowAvailability окно бронирования с информацией о занятости
type WindowAvailability struct {
	From     types.TimeString // Начало окна
	To       types.TimeString // Конец окна (не включается)
	Occupied int              // Количество активных броней в окне
	Capacity *int             // Действующая вместимость, nil = без ограничения
	Free     *int             // Свободные места, nil = без ограничения
}
