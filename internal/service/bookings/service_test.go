package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Eclipse-BookingService/internal/service/bookings/models"
	"github.com/m04kA/Eclipse-BookingService/pkg/ptr"
)

type mockBookingRepo struct {
	byID       map[int64]*domain.Booking
	byPhone    []*domain.Booking
	listResult []*domain.Booking
	lastFilter *domain.BookingsFilter
	cancelled  []int64
	deleted    []int64
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if b, ok := m.byID[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (m *mockBookingRepo) GetByPhone(ctx context.Context, phoneNumber string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.byPhone, nil
}

func (m *mockBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	m.lastFilter = &filter
	return m.listResult, nil
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64) error {
	if b, ok := m.byID[id]; ok {
		b.Status = domain.StatusCancelled
		now := time.Now()
		b.CancelledAt = &now
		m.cancelled = append(m.cancelled, id)
		return nil
	}
	return bookingRepo.ErrBookingNotFound
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; ok {
		delete(m.byID, id)
		m.deleted = append(m.deleted, id)
		return nil
	}
	return bookingRepo.ErrBookingNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func confirmedBooking(id int64, internalCourt int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		UserID:          7,
		CustomerName:    "Asha",
		PhoneNumber:     "9876543210",
		CourtNumber:     internalCourt,
		BookingDate:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "13:00",
		EndTime:         "14:00",
		NumberOfPlayers: 4,
		TotalPrice:      600,
		Status:          domain.StatusConfirmed,
		PaymentStatus:   domain.PaymentPayAtCourt,
		BookingCode:     "AB12CD34",
	}
}

func TestGetByID_ProjectsDisplayCourt(t *testing.T) {
	repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
		1: confirmedBooking(1, 5),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	// внутренний 5 -> отображаемый 3
	assert.Equal(t, 3, resp.CourtNumber)
	assert.Equal(t, "2025-10-15", resp.BookingDate)
	assert.Equal(t, "13:00", resp.StartTime)
	assert.Equal(t, "AB12CD34", resp.BookingCode)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&mockBookingRepo{byID: map[int64]*domain.Booking{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	repo := &mockBookingRepo{byPhone: []*domain.Booking{
		confirmedBooking(2, 1),
		confirmedBooking(1, 5),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		PhoneNumber: "9876543210",
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
	assert.Equal(t, 7, resp.Bookings[0].CourtNumber)
	assert.Equal(t, 3, resp.Bookings[1].CourtNumber)
}

func TestGetUserBookings_EmptyPhone(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		PhoneNumber: "9876543210",
		Status:      ptr.Ptr("whatever"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
		1: confirmedBooking(1, 5),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.cancelled)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.NotNil(t, resp.CancelledAt)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	b := confirmedBooking(1, 5)
	b.Status = domain.StatusCancelled
	repo := &mockBookingRepo{byID: map[int64]*domain.Booking{1: b}}
	svc := NewService(repo, nopLogger{})

	// Отмена терминальна - повторная отмена отклоняется
	_, err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&mockBookingRepo{byID: map[int64]*domain.Booking{}}, nopLogger{})

	_, err := svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAdminList_ConvertsCourtToInternal(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.AdminList(context.Background(), &models.AdminListRequest{
		CourtNumber: ptr.Ptr(3),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter)
	require.NotNil(t, repo.lastFilter.CourtNumber)

	// отображаемый 3 -> внутренний 5
	assert.Equal(t, 5, *repo.lastFilter.CourtNumber)
}

func TestAdminList_InvalidStatus(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, nopLogger{})

	_, err := svc.AdminList(context.Background(), &models.AdminListRequest{
		Status: ptr.Ptr("bogus"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdminDelete(t *testing.T) {
	repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
		1: confirmedBooking(1, 5),
	}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.AdminDelete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)

	err := svc.AdminDelete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelThenRebookFlow(t *testing.T) {
	// Отменённое бронирование освобождает слот: репозиторные проверки
	// смотрят только на подтверждённые записи, это контракт хранилища.
	// Здесь фиксируем, что отменённая запись остаётся в истории.
	repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
		1: confirmedBooking(1, 5),
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	assert.NotNil(t, got.CancelledAt)
	assert.False(t, errors.Is(err, ErrBookingNotFound))
}
