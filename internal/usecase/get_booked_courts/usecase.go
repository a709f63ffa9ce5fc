package get_booked_courts

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	"github.com/m04kA/Eclipse-BookingService/internal/slotparse"
	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

// UseCase use case проверки занятости кортов на дату и слот
type UseCase struct {
	bookingRepo  BookingRepository
	timeSlotRepo TimeSlotRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	timeSlotRepo TimeSlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeSlotRepo: timeSlotRepo,
		logger:       logger,
	}
}

// Execute возвращает номера занятых кортов на дату и слот.
//
// Неразборчивый идентификатор слота не считается ошибкой: ответ - пустой
// список, клиент продолжает оптимистично. Двойное бронирование при этом
// невозможно - его ловит путь записи и уникальный индекс, проверка
// занятости только подсказка для интерфейса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.SlotID == "" && req.StartTime == "" {
		return nil, fmt.Errorf("%w: either startTime or timeSlotId is required", ErrInvalidInput)
	}

	start, ok := uc.resolveStartTime(ctx, req)
	if !ok {
		uc.logger.Warn("GetBookedCourts: unresolvable slot %q/%q for date=%s, returning empty set",
			req.SlotID, req.StartTime, req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, BookedCourts: []string{}}, nil
	}

	// Один канонический старт может быть представлен несколькими записями
	// справочника; собираем все их времена начала
	startTimes := []types.TimeString{start}
	if slots, err := uc.timeSlotRepo.ListByStartTime(ctx, start); err == nil {
		for _, slot := range slots {
			if slot.StartTime != start {
				startTimes = append(startTimes, slot.StartTime)
			}
		}
	}

	bookings, err := uc.bookingRepo.GetForDayAndStartTimes(ctx, req.Date, startTimes)
	if err != nil {
		uc.logger.Error("GetBookedCourts: failed to query bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to query bookings: %v", ErrInternal, err)
	}

	// Проекция во внешнюю нумерацию кортов
	booked := make([]string, 0, len(bookings))
	for _, b := range bookings {
		booked = append(booked, strconv.Itoa(domain.DisplayCourtNumber(b.CourtNumber)))
	}

	uc.logger.Info("GetBookedCourts: date=%s start=%s booked=%d",
		req.Date.Format(domain.DateFormat), start, len(booked))

	return &Response{Date: req.Date, BookedCourts: booked}, nil
}

// resolveStartTime приводит вход к каноническому времени начала.
// false означает, что слот не резолвится ни справочником, ни парсером -
// вызывающий деградирует к пустому списку, а не к ошибке.
func (uc *UseCase) resolveStartTime(ctx context.Context, req *Request) (types.TimeString, bool) {
	// Явное startTime имеет приоритет над идентификатором
	if req.StartTime != "" {
		if start, err := slotparse.ParseClock(req.StartTime); err == nil {
			return start, true
		}
		return "", false
	}

	if slotparse.IsObjectID(req.SlotID) {
		if slot, err := uc.timeSlotRepo.GetByLegacyID(ctx, req.SlotID); err == nil {
			return slot.StartTime, true
		}
		return "", false
	}

	if slotparse.IsNumericID(req.SlotID) {
		if id, err := strconv.ParseInt(req.SlotID, 10, 64); err == nil {
			if slot, err := uc.timeSlotRepo.GetByID(ctx, id); err == nil {
				return slot.StartTime, true
			}
		}
		// Числовой id без записи справочника: пробуем разобрать как время
	}

	if window, err := slotparse.Parse(req.SlotID); err == nil {
		return window.Start, true
	}

	return "", false
}
