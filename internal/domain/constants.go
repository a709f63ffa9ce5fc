package domain

// Форматы дат и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения бронирования
const (
	MinPlayers     = 1
	MaxPlayers     = 6
	DefaultPlayers = 4

	MaxNotesLength = 500
	MaxNameLength  = 100
)

// Нумерация кортов. На площадке 7 кортов; в хранилище корты нумеруются
// с дальнего конца зала, поэтому отображаемый номер N соответствует
// внутреннему 8-N. Инверсия применяется ровно в двух местах: при записи
// бронирования и при проекции в ответ клиенту.
const TotalCourts = 7

// InternalCourtNumber переводит отображаемый номер корта во внутренний.
// Номера вне диапазона 1..TotalCourts возвращаются без изменений.
func InternalCourtNumber(display int) int {
	if display < 1 || display > TotalCourts {
		return display
	}
	return TotalCourts + 1 - display
}

// DisplayCourtNumber переводит внутренний номер корта в отображаемый.
// Формула симметрична InternalCourtNumber.
func DisplayCourtNumber(internal int) int {
	return InternalCourtNumber(internal)
}

// Код бронирования
const (
	BookingCodeLength   = 8
	BookingCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)
