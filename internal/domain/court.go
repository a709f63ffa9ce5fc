package domain

import "time"

// CourtStatus статус корта
type CourtStatus string

const (
	CourtAvailable   CourtStatus = "available"
	CourtMaintenance CourtStatus = "maintenance"
	CourtClosed      CourtStatus = "closed"
)

// CourtType тип корта
type CourtType string

const (
	CourtOutdoor CourtType = "outdoor"
	CourtIndoor  CourtType = "indoor"
)

// Court игровой корт. CourtNumber - внутренняя нумерация хранилища;
// клиентам всегда показывается отображаемый номер (см. DisplayCourtNumber).
type Court struct {
	ID           int64
	LocationID   int64
	Name         string
	CourtNumber  int
	CourtType    CourtType
	Status       CourtStatus
	PricePerHour float64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBookable возвращает true, если корт доступен для бронирования
func (c *Court) IsBookable() bool {
	return c.Active && c.Status == CourtAvailable
}
