package create_booking

import (
	"time"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	createBooking "github.com/m04kA/Eclipse-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	CourtNumber int    `json:"courtNumber"` // Отображаемый номер корта (1..7)
	Date        string `json:"date"`        // "2025-10-15"

	// TimeSlot идентификатор слота в любом принимаемом формате:
	// числовой id, legacy hex id, код секции ("a2"), диапазон
	// ("13:00-14:00"), одиночное время ("1:00 PM")
	TimeSlot string `json:"timeSlot"`

	NumberOfPlayers   int     `json:"numberOfPlayers,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	VerificationToken *string `json:"verificationToken,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	BookingCode  string  `json:"bookingCode"`
	Name         string  `json:"name"`
	PhoneNumber  string  `json:"phoneNumber"`
	CourtNumber  int     `json:"courtNumber"`
	CourtName    string  `json:"courtName"`
	PricePerHour float64 `json:"pricePerHour"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime,omitempty"`

	NumberOfPlayers int     `json:"numberOfPlayers"`
	TotalPrice      float64 `json:"totalPrice"`
	Notes           *string `json:"notes,omitempty"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату; слот парсится внутри use case со своей политикой деградации
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:              r.Name,
		PhoneNumber:       r.PhoneNumber,
		CourtNumber:       r.CourtNumber,
		Date:              bookingDate,
		SlotID:            r.TimeSlot,
		NumberOfPlayers:   r.NumberOfPlayers,
		Notes:             r.Notes,
		VerificationToken: r.VerificationToken,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		BookingCode:     resp.BookingCode,
		Name:            resp.CustomerName,
		PhoneNumber:     resp.PhoneNumber,
		CourtNumber:     resp.CourtNumber,
		CourtName:       resp.CourtName,
		PricePerHour:    resp.PricePerHour,
		Date:            resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		NumberOfPlayers: resp.NumberOfPlayers,
		TotalPrice:      resp.TotalPrice,
		Notes:           resp.Notes,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
