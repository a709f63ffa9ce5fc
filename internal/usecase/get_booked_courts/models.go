package get_booked_courts

import "time"

// Request модель запроса проверки занятости кортов
type Request struct {
	Date time.Time // Календарный день

	// SlotID идентификатор слота в любом принимаемом формате
	// (числовой id, legacy hex id, код секции, диапазон, одиночное время).
	// Пустой SlotID при заданном StartTime допустим.
	SlotID string

	// StartTime каноническое время начала, если клиент прислал его напрямую
	StartTime string
}

// Response модель ответа со списком занятых кортов
type Response struct {
	Date time.Time

	// BookedCourts номера занятых кортов в отображаемой нумерации
	BookedCourts []string
}
