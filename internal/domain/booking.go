package domain

import (
	"time"

	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	// StatusPending принимается при чтении для совместимости со старыми
	// записями, но новые бронирования создаются сразу подтверждёнными
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus статус оплаты. Онлайн-оплаты нет, оплата всегда на корте.
type PaymentStatus string

const (
	PaymentPayAtCourt PaymentStatus = "pay-at-court"
)

// Booking бронирование одного корта на один часовой слот
type Booking struct {
	ID     int64
	UserID int64

	// Денормализованные данные клиента для списков и админки
	CustomerName string
	PhoneNumber  string

	// CourtNumber во внутренней нумерации (см. DisplayCourtNumber)
	CourtNumber int

	// BookingDate календарный день; сопоставление идёт только по дню
	BookingDate time.Time
	StartTime   types.TimeString
	// EndTime может быть пустым для специальных слотов без времени окончания
	EndTime types.TimeString

	NumberOfPlayers int
	TotalPrice      float64
	Notes           *string

	Status        BookingStatus
	PaymentStatus PaymentStatus

	// BookingCode уникальный человекочитаемый код для подтверждения на корте
	BookingCode string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive возвращает true, если бронирование не отменено
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled возвращает true, если бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled возвращает true, если бронирование можно отменить.
// Отмена - терминальный переход, повторная отмена невозможна.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPending
}

// BookingsFilter фильтр для админского списка бронирований
type BookingsFilter struct {
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	CourtNumber      *int           // Внутренний номер корта (опционально)
	PhoneNumber      *string        // Телефон клиента (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
