package models

import (
	"errors"
	"time"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований клиента по телефону
type GetUserBookingsRequest struct {
	PhoneNumber string  `json:"phoneNumber"`
	Status      *string `json:"status,omitempty"`
}

// AdminListRequest запрос админского списка бронирований
type AdminListRequest struct {
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	CourtNumber      *int       `json:"courtNumber,omitempty"`      // Отображаемый номер корта (опционально)
	PhoneNumber      *string    `json:"phoneNumber,omitempty"`      // Телефон клиента (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр.
// Номер корта переводится из отображаемой нумерации во внутреннюю.
func (r *AdminListRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		PhoneNumber:      r.PhoneNumber,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.CourtNumber != nil {
		internal := domain.InternalCourtNumber(*r.CourtNumber)
		filter.CourtNumber = &internal
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64  `json:"id"`
	BookingCode  string `json:"bookingCode"`
	CustomerName string `json:"name"`
	PhoneNumber  string `json:"phoneNumber"`

	// CourtNumber в отображаемой нумерации
	CourtNumber int `json:"courtNumber"`

	BookingDate string `json:"date"`      // "2025-10-15"
	StartTime   string `json:"startTime"` // "14:00"
	EndTime     string `json:"endTime,omitempty"`

	NumberOfPlayers int     `json:"numberOfPlayers"`
	TotalPrice      float64 `json:"totalPrice"`
	Notes           *string `json:"notes,omitempty"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		BookingCode:     b.BookingCode,
		CustomerName:    b.CustomerName,
		PhoneNumber:     b.PhoneNumber,
		CourtNumber:     domain.DisplayCourtNumber(b.CourtNumber),
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		NumberOfPlayers: b.NumberOfPlayers,
		TotalPrice:      b.TotalPrice,
		Notes:           b.Notes,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
