package admin_list_bookings

import (
	"context"

	"github.com/m04kA/Eclipse-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	AdminList(ctx context.Context, req *models.AdminListRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
