package domain

import "time"

// LocationStatus статус площадки
type LocationStatus string

const (
	LocationActive     LocationStatus = "active"
	LocationComingSoon LocationStatus = "coming-soon"
	LocationClosed     LocationStatus = "closed"
)

// Location площадка с кортами. Справочные данные, заводятся сидированием.
type Location struct {
	ID        int64
	Name      string
	Address   string
	Status    LocationStatus
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
