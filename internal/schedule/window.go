// Package schedule определяет доступные окна бронирования для арендатора на дату
// и эффективную вместимость каждого окна.
package schedule

import (
	"fmt"

	"github.com/m04kA/RBP-ReservationService/pkg/types"
)

// Window окно бронирования, заданное минутами с начала суток.
// Нижняя граница включается, верхняя - нет: StartMinute <= t < EndMinute.
type Window struct {
	StartMinute int
	EndMinute   int

	// Capacity собственная вместимость окна (из кастомного слота), nil = не задана
	Capacity *int
}

// Contains проверяет, попадает ли минута суток в окно
func (w Window) Contains(minuteOfDay int) bool {
	return minuteOfDay >= w.StartMinute && minuteOfDay < w.EndMinute
}

// StartTime возвращает начало окна в формате HH:MM
func (w Window) StartTime() types.TimeString {
	ts, _ := types.NewTimeStringFromMinutes(w.StartMinute)
	return ts
}

// EndTime возвращает конец окна в формате HH:MM
func (w Window) EndTime() types.TimeString {
	ts, _ := types.NewTimeStringFromMinutes(w.EndMinute)
	return ts
}

// String возвращает окно в виде "HH:MM-HH:MM"
func (w Window) String() string {
	return fmt.Sprintf("%s-%s", w.StartTime(), w.EndTime())
}

// Match возвращает первое окно, содержащее указанную минуту суток
func Match(windows []Window, minuteOfDay int) (Window, bool) {
	for _, w := range windows {
		if w.Contains(minuteOfDay) {
			return w, true
		}
	}
	return Window{}, false
}
