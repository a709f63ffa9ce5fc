package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Eclipse-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований клиента по телефону,
// свежие записи первыми. Опционально фильтрует по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for phone=%s, status=%v", req.PhoneNumber, req.Status)

	if req.PhoneNumber == "" {
		s.logger.Warn("GetUserBookings: empty phone number")
		return nil, fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for phone=%s", *req.Status, req.PhoneNumber)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByPhone(ctx, req.PhoneNumber, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for phone=%s: %v", req.PhoneNumber, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for phone=%s", len(bookings), req.PhoneNumber)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование. Отмена мягкая - запись остаётся с
// проставленным cancelled_at, слот освобождается для повторной брони.
// Отменённое бронирование отменить повторно нельзя.
func (s *Service) Cancel(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Перечитываем, чтобы вернуть актуальные status/cancelledAt
	cancelled, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - failed to reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(cancelled), nil
}

// AdminList получает бронирования с гибкой фильтрацией для админки.
//
// Примеры использования:
// - Все активные бронирования: AdminList(ctx, &AdminListRequest{})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования одного корта: указать CourtNumber (отображаемый)
// - История клиента: указать PhoneNumber
// - Включая отменённые: IncludeCancelled = true
func (s *Service) AdminList(ctx context.Context, req *models.AdminListRequest) (*models.BookingListResponse, error) {
	logMsg := "AdminList: fetching bookings"
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.CourtNumber != nil {
		logMsg += fmt.Sprintf(", court=%d", *req.CourtNumber)
	}
	if req.PhoneNumber != nil {
		logMsg += fmt.Sprintf(", phone=%s", *req.PhoneNumber)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("AdminList: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("AdminList: repository error: %v", err)
		return nil, fmt.Errorf("%w: AdminList - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AdminList: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// AdminDelete физически удаляет бронирование. В отличие от Cancel запись
// исчезает из истории; операция только для админки.
func (s *Service) AdminDelete(ctx context.Context, bookingID int64) error {
	s.logger.Info("AdminDelete: deleting booking id=%d", bookingID)

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("AdminDelete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("AdminDelete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: AdminDelete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AdminDelete: successfully deleted booking id=%d", bookingID)
	return nil
}
