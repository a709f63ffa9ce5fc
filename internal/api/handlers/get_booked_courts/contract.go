package get_booked_courts

import (
	"context"

	getBookedCourts "github.com/m04kA/Eclipse-BookingService/internal/usecase/get_booked_courts"
)

type GetBookedCourtsUseCase interface {
	Execute(ctx context.Context, req *getBookedCourts.Request) (*getBookedCourts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
