package catalog

import (
	"context"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	ListActive(ctx context.Context) ([]*domain.Court, error)
}

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	ListActive(ctx context.Context) ([]*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
