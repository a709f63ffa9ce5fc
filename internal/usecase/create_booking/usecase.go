package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Eclipse-BookingService/internal/slotparse"
	"github.com/m04kA/Eclipse-BookingService/pkg/ptr"
)

// maxCodeAttempts число попыток генерации кода при коллизии
const maxCodeAttempts = 3

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	courtRepo    CourtRepository
	timeSlotRepo TimeSlotRepository
	verifier     VerifyClient // nil - проверка телефонов выключена
	txManager    TransactionManager
	codeGen      CodeGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	courtRepo CourtRepository,
	timeSlotRepo TimeSlotRepository,
	verifier VerifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		courtRepo:    courtRepo,
		timeSlotRepo: timeSlotRepo,
		verifier:     verifier,
		txManager:    txManager,
		codeGen:      &RandomCodeGenerator{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликта и вставка идут в сериализуемой транзакции; частичный
// уникальный индекс в БД страхует от гонки двух одновременных запросов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: phone=%s, court=%d, date=%s, slot=%q",
		req.PhoneNumber, req.CourtNumber, req.Date.Format(domain.DateFormat), req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка токена подтверждения телефона (если включена)
	if uc.verifier != nil {
		token := ptr.Deref(req.VerificationToken, "")
		if err := uc.verifier.VerifyToken(ctx, req.PhoneNumber, token); err != nil {
			uc.logger.Warn("CreateBooking: verification failed for phone=%s: %v", req.PhoneNumber, err)
			return nil, ErrVerificationFailed
		}
	}

	// 3. Строгий поиск корта по номеру. Клиент присылает отображаемый номер,
	// в хранилище корты лежат во внутренней нумерации.
	internalCourt := domain.InternalCourtNumber(req.CourtNumber)

	court, err := uc.courtRepo.GetByNumber(ctx, internalCourt)
	if err != nil {
		uc.logger.Warn("CreateBooking: court display=%d (internal=%d) not found: %v",
			req.CourtNumber, internalCourt, err)
		return nil, ErrCourtNotFound
	}
	if !court.IsBookable() {
		uc.logger.Warn("CreateBooking: court display=%d is not bookable, status=%s",
			req.CourtNumber, court.Status)
		return nil, ErrCourtUnavailable
	}

	// 4. Нормализация слота в каноническое окно
	window := uc.resolveWindow(ctx, req.SlotID)

	// 5. Клиент по телефону: создаём или обновляем имя
	user, err := uc.userRepo.Upsert(ctx, req.Name, req.PhoneNumber)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to upsert user phone=%s: %v", req.PhoneNumber, err)
		return nil, fmt.Errorf("%w: failed to upsert user: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 6. Проверка конфликта и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Ищем подтверждённое бронирование на тот же день/корт/время
		existing, err := uc.bookingRepo.GetConfirmedSlot(txCtx, req.Date, internalCourt, window.Start)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Warn("CreateBooking: slot taken, date=%s, court=%d, start=%s (booking id=%d)",
				req.Date.Format(domain.DateFormat), internalCourt, window.Start, existing.ID)
			return ErrSlotAlreadyBooked
		}

		// 6.2. Вставка с генерацией кода; коллизия кода - регенерация
		booking := &domain.Booking{
			UserID:          user.ID,
			CustomerName:    req.Name,
			PhoneNumber:     req.PhoneNumber,
			CourtNumber:     internalCourt,
			BookingDate:     req.Date,
			StartTime:       window.Start,
			EndTime:         window.End,
			NumberOfPlayers: clampPlayers(req.NumberOfPlayers),
			TotalPrice:      court.PricePerHour,
			Notes:           req.Notes,
			Status:          domain.StatusConfirmed,
			PaymentStatus:   domain.PaymentPayAtCourt,
		}

		created, err := uc.insertWithCode(txCtx, booking)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d code=%s", result.ID, result.BookingCode)

	return &Response{
		ID:              result.ID,
		BookingCode:     result.BookingCode,
		CustomerName:    result.CustomerName,
		PhoneNumber:     result.PhoneNumber,
		CourtNumber:     domain.DisplayCourtNumber(result.CourtNumber),
		CourtName:       court.Name,
		PricePerHour:    court.PricePerHour,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		NumberOfPlayers: result.NumberOfPlayers,
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveWindow приводит идентификатор слота к каноническому окну.
// Идентификаторы справочника (числовой и legacy hex) резолвятся через
// репозиторий; всё остальное разбирает slotparse. Неразборчивый
// идентификатор деградирует в окно по умолчанию - запись не блокируется
// из-за кривого слота, конфликт дальше проверяется по этому окну.
func (uc *UseCase) resolveWindow(ctx context.Context, slotID string) slotparse.Window {
	if slotparse.IsObjectID(slotID) {
		if slot, err := uc.timeSlotRepo.GetByLegacyID(ctx, slotID); err == nil {
			return slotWindow(slot)
		}
		uc.logger.Warn("CreateBooking: legacy slot id=%s not found, falling back to parser", slotID)
	} else if slotparse.IsNumericID(slotID) && !slotparse.IsSectionCode(slotID) {
		if slot, err := uc.timeSlotRepo.GetByID(ctx, numericID(slotID)); err == nil {
			return slotWindow(slot)
		}
		uc.logger.Warn("CreateBooking: slot id=%s not found, falling back to parser", slotID)
	}

	window, err := slotparse.Parse(slotID)
	if err != nil {
		uc.logger.Warn("CreateBooking: unparseable slot %q, using default window %s-%s",
			slotID, slotparse.DefaultWindow.Start, slotparse.DefaultWindow.End)
		return slotparse.DefaultWindow
	}
	return window
}

// insertWithCode вставляет бронирование, регенерируя код при коллизии
func (uc *UseCase) insertWithCode(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := uc.codeGen.Generate()
		if err != nil {
			uc.logger.Error("CreateBooking: code generation failed: %v", err)
			return nil, fmt.Errorf("%w: code generation failed: %v", ErrInternal, err)
		}
		booking.BookingCode = code

		created, err := uc.bookingRepo.Create(ctx, booking)
		if err == nil {
			return created, nil
		}

		switch {
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			// Индекс поймал гонку, которую не увидела проверка
			return nil, ErrSlotAlreadyBooked
		case errors.Is(err, bookingRepo.ErrCodeCollision):
			uc.logger.Warn("CreateBooking: booking code collision on %q, attempt %d/%d",
				code, attempt, maxCodeAttempts)
			continue
		default:
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	return nil, fmt.Errorf("%w: exhausted booking code attempts", ErrInternal)
}

// slotWindow строит окно из записи справочника.
// Пустое время окончания сохраняется как есть - это "незакрытый" слот.
func slotWindow(slot *domain.TimeSlot) slotparse.Window {
	return slotparse.Window{Start: slot.StartTime, End: slot.EndTime}
}

func numericID(raw string) int64 {
	var id int64
	_, _ = fmt.Sscan(raw, &id)
	return id
}
