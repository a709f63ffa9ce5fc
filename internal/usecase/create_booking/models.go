package create_booking

import (
	"time"

	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name        string // Имя клиента
	PhoneNumber string // Телефон - естественный ключ клиента
	CourtNumber int    // Номер корта в отображаемой нумерации (1..7)

	Date time.Time // Дата бронирования (без времени)

	// SlotID идентификатор слота в любом принимаемом формате:
	// числовой id, legacy hex id, код секции ("a2"), диапазон
	// ("13:00-14:00"), одиночное время ("1:00 PM")
	SlotID string

	NumberOfPlayers   int     // 0 - использовать значение по умолчанию
	Notes             *string // Заметки (опционально)
	VerificationToken *string // Токен проверки телефона (если проверка включена)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	BookingCode string

	CustomerName string
	PhoneNumber  string

	// CourtNumber в отображаемой нумерации - той же, что прислал клиент
	CourtNumber  int
	CourtName    string
	PricePerHour float64

	BookingDate time.Time
	StartTime   types.TimeString
	// EndTime пустой для слотов без времени окончания
	EndTime types.TimeString

	NumberOfPlayers int
	TotalPrice      float64
	Notes           *string

	Status        string
	PaymentStatus string

	CreatedAt time.Time
	UpdatedAt time.Time
}
