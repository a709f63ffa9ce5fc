package get_booked_courts

import (
	"context"
	"time"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetForDayAndStartTimes(ctx context.Context, day time.Time, startTimes []types.TimeString) ([]*domain.Booking, error)
}

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	GetByLegacyID(ctx context.Context, legacyID string) (*domain.TimeSlot, error)
	ListByStartTime(ctx context.Context, startTime types.TimeString) ([]*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
