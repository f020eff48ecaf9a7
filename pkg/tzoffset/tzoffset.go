// Package tzoffset нормализация времени между локальными часами клиента и UTC.
//
// Клиент передаёт смещение в минутах в соглашении JavaScript getTimezoneOffset:
// local = UTC - offset. Поэтому для получения абсолютного момента времени смещение
// ПРИБАВЛЯЕТСЯ к наивной интерпретации локальных даты и времени как UTC,
// а при обратном преобразовании - вычитается.
package tzoffset

import (
	"time"

	"github.com/m04kA/RBP-ReservationService/pkg/types"
)

// Границы допустимого смещения: +-14 часов в минутах
const (
	MinOffsetMinutes = -840
	MaxOffsetMinutes = 840
)

// Clamp приводит смещение к допустимому диапазону.
// Отсутствующее (nil) или выходящее за пределы +-14 часов смещение трактуется как 0,
// а не отклоняется - это поведение нужно для совместимости со старыми записями.
func Clamp(offsetMinutes *int) int {
	if offsetMinutes == nil {
		return 0
	}
	if *offsetMinutes < MinOffsetMinutes || *offsetMinutes > MaxOffsetMinutes {
		return 0
	}
	return *offsetMinutes
}

// Normalize преобразует локальные дату и время клиента в канонический момент UTC.
// date задаёт календарный день, wallTime - часы и минуты внутри этого дня.
func Normalize(date time.Time, wallTime types.TimeString, offsetMinutes int) (time.Time, error) {
	minutes, err := wallTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}

	naive := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(minutes) * time.Minute)

	return naive.Add(time.Duration(offsetMinutes) * time.Minute), nil
}

// Denormalize восстанавливает локальные дату и время клиента из момента UTC.
// Обратная операция к Normalize: Denormalize(Normalize(d, t, o), o) == (d, t).
func Denormalize(instant time.Time, offsetMinutes int) (time.Time, types.TimeString) {
	local := instant.UTC().Add(-time.Duration(offsetMinutes) * time.Minute)

	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	return date, types.NewTimeString(local)
}

// LocalMinuteOfDay возвращает локальные календарную дату и минуту суток для момента UTC.
// Используется при подсчёте занятости окна: каждая запись пересчитывается
// по её собственному сохранённому смещению.
func LocalMinuteOfDay(instant time.Time, offsetMinutes int) (time.Time, int) {
	local := instant.UTC().Add(-time.Duration(offsetMinutes) * time.Minute)

	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	return date, local.Hour()*60 + local.Minute()
}

// DayRangeUTC возвращает диапазон UTC, гарантированно покрывающий локальную
// календарную дату date при любом допустимом смещении клиента.
// Нужен для выборки кандидатов перед точным пересчётом по смещению каждой записи.
func DayRangeUTC(date time.Time) (time.Time, time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	from := dayStart.Add(MinOffsetMinutes * time.Minute)
	to := dayEnd.Add(MaxOffsetMinutes * time.Minute)
	return from, to
}
