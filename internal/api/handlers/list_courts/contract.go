package list_courts

import (
	"context"

	"github.com/m04kA/Eclipse-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListCourts(ctx context.Context) (*models.CourtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
