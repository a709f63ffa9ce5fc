package get_booked_courts

import (
	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	getBookedCourts "github.com/m04kA/Eclipse-BookingService/internal/usecase/get_booked_courts"
)

// BookedCourtsResponse HTTP response model
type BookedCourtsResponse struct {
	Date string `json:"date"`

	// BookedCourts номера занятых кортов в отображаемой нумерации
	BookedCourts []string `json:"bookedCourts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookedCourts.Response) *BookedCourtsResponse {
	return &BookedCourtsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		BookedCourts: resp.BookedCourts,
	}
}
