package list_time_slots

import (
	"context"

	"github.com/m04kA/Eclipse-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListTimeSlots(ctx context.Context) (*models.TimeSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
