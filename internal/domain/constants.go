package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinPartySize = 1
	MaxPartySize = 100

	MaxNameLength  = 200
	MaxPhoneLength = 32
	MaxEmailLength = 254
	MaxNotesLength = 500

	MinLeadHours = 0
	MaxLeadHours = 720 // 30 суток

	MinAdvanceDays = 0
	MaxAdvanceDays = 365
)

// Weekdays названия дней недели в нижнем регистре - допустимые ключи OpeningHours
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// IsValidWeekday проверяет, что строка является корректным названием дня недели
func IsValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
