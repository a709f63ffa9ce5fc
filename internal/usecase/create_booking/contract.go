package create_booking

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetConfirmedSlot(ctx context.Context, day time.Time, courtNumber int, startTime types.TimeString) (*domain.Booking, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Upsert(ctx context.Context, name, phoneNumber string) (*domain.User, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByNumber(ctx context.Context, courtNumber int) (*domain.Court, error)
}

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	GetByLegacyID(ctx context.Context, legacyID string) (*domain.TimeSlot, error)
}

// VerifyClient интерфейс клиента сервиса проверки телефонов.
// nil-клиент означает, что проверка выключена конфигурацией.
type VerifyClient interface {
	VerifyToken(ctx context.Context, phoneNumber, token string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CodeGenerator интерфейс генерации кодов бронирования (для тестирования)
type CodeGenerator interface {
	Generate() (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RandomCodeGenerator генератор кодов бронирования на crypto/rand
type RandomCodeGenerator struct{}

// Generate возвращает случайный код из BookingCodeLength символов
// алфавита A-Z0-9
func (g *RandomCodeGenerator) Generate() (string, error) {
	alphabet := domain.BookingCodeAlphabet
	code := make([]byte, domain.BookingCodeLength)
	max := big.NewInt(int64(len(alphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
