package schedule

import (
	"time"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	"github.com/m04kA/RBP-ReservationService/pkg/types"
)

// windowSource источник окон бронирования.
// Источники упорядочены по приоритету и опрашиваются сверху вниз:
// первый, который применим к конфигурации, даёт окончательный результат.
type windowSource interface {
	// resolve возвращает окна на дату и признак применимости источника.
	// false во втором значении = передать управление следующему источнику.
	resolve(cfg *domain.TenantReservationConfig, date time.Time) ([]Window, bool)
}

// sources порядок приоритета: кастомные слоты полностью замещают рабочие часы
var sources = []windowSource{
	customSlotsSource{},
	openingHoursSource{},
}

// ResolveWindows возвращает упорядоченный список окон бронирования на дату.
// Результат зависит только от конфигурации и дня недели даты.
// Пустой список означает, что в этот день бронирования невозможны.
func ResolveWindows(cfg *domain.TenantReservationConfig, date time.Time) []Window {
	for _, src := range sources {
		if windows, ok := src.resolve(cfg, date); ok {
			return windows
		}
	}
	return []Window{}
}

// customSlotsSource окна из кастомных слотов арендатора.
// Применим, когда задан хотя бы один слот; рабочие часы при этом игнорируются.
type customSlotsSource struct{}

func (customSlotsSource) resolve(cfg *domain.TenantReservationConfig, _ time.Time) ([]Window, bool) {
	if !cfg.HasCustomSlots() {
		return nil, false
	}

	windows := make([]Window, 0, len(cfg.Slots))
	for _, slot := range cfg.Slots {
		w, ok := buildWindow(slot.From, slot.To)
		if !ok {
			// Некорректные записи молча пропускаются
			continue
		}
		w.Capacity = slot.Capacity
		windows = append(windows, w)
	}
	return windows, true
}

// openingHoursSource окна из обычных рабочих часов на день недели даты
type openingHoursSource struct{}

func (openingHoursSource) resolve(cfg *domain.TenantReservationConfig, date time.Time) ([]Window, bool) {
	ranges := cfg.HoursForWeekday(date.Weekday())

	windows := make([]Window, 0, len(ranges))
	for _, r := range ranges {
		w, ok := buildWindow(r.Open, r.Close)
		if !ok {
			continue
		}
		windows = append(windows, w)
	}
	return windows, true
}

// buildWindow строит окно из пары HH:MM строк.
// Возвращает false при некорректном формате или когда конец не позже начала.
func buildWindow(from, to types.TimeString) (Window, bool) {
	start, err := from.Minutes()
	if err != nil {
		return Window{}, false
	}
	end, err := to.Minutes()
	if err != nil {
		return Window{}, false
	}
	if end <= start {
		return Window{}, false
	}
	return Window{StartMinute: start, EndMinute: end}, true
}
