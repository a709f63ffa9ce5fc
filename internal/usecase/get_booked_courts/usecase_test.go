package get_booked_courts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

type mockBookingRepo struct {
	bookings   []*domain.Booking
	err        error
	lastStarts []types.TimeString
}

func (m *mockBookingRepo) GetForDayAndStartTimes(ctx context.Context, day time.Time, startTimes []types.TimeString) ([]*domain.Booking, error) {
	m.lastStarts = startTimes
	if m.err != nil {
		return nil, m.err
	}
	return m.bookings, nil
}

type mockTimeSlotRepo struct {
	byID        map[int64]*domain.TimeSlot
	byLegacy    map[string]*domain.TimeSlot
	byStartTime map[types.TimeString][]*domain.TimeSlot
}

func (m *mockTimeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	if s, ok := m.byID[id]; ok {
		return s, nil
	}
	return nil, errors.New("timeslot: time slot not found")
}

func (m *mockTimeSlotRepo) GetByLegacyID(ctx context.Context, legacyID string) (*domain.TimeSlot, error) {
	if s, ok := m.byLegacy[legacyID]; ok {
		return s, nil
	}
	return nil, errors.New("timeslot: time slot not found")
}

func (m *mockTimeSlotRepo) ListByStartTime(ctx context.Context, startTime types.TimeString) ([]*domain.TimeSlot, error) {
	return m.byStartTime[startTime], nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func TestExecute_ProjectsDisplayCourtNumbers(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.Booking{
		// внутренние 5 и 1 -> отображаемые 3 и 7
		{ID: 1, CourtNumber: 5, StartTime: "13:00", Status: domain.StatusConfirmed},
		{ID: 2, CourtNumber: 1, StartTime: "13:00", Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(repo, &mockTimeSlotRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(), SlotID: "a2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "7"}, resp.BookedCourts)
}

func TestExecute_EmptyWhenNothingBooked(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockTimeSlotRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(), SlotID: "a2"})
	require.NoError(t, err)
	assert.NotNil(t, resp.BookedCourts)
	assert.Empty(t, resp.BookedCourts)
}

func TestExecute_UnresolvableSlotDegradesToEmpty(t *testing.T) {
	// Неразборчивый слот - не ошибка: пустой список, клиент продолжает
	repo := &mockBookingRepo{bookings: []*domain.Booking{
		{ID: 1, CourtNumber: 5, StartTime: "13:00", Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(repo, &mockTimeSlotRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(), SlotID: "garbage"})
	require.NoError(t, err)
	assert.Empty(t, resp.BookedCourts)
	// До репозитория запрос не дошёл
	assert.Nil(t, repo.lastStarts)
}

func TestExecute_MissingSlotIDInRepoDegradesToEmpty(t *testing.T) {
	// Legacy id без записи справочника
	uc := NewUseCase(&mockBookingRepo{}, &mockTimeSlotRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:   testDate(),
		SlotID: "65f1a2b3c4d5e6f7a8b9c0d1",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.BookedCourts)
}

func TestExecute_ResolvesSlotFromRepo(t *testing.T) {
	slots := &mockTimeSlotRepo{byID: map[int64]*domain.TimeSlot{
		12: {ID: 12, StartTime: "18:00", EndTime: "19:00", Section: domain.SectionEvening, Active: true},
	}}
	repo := &mockBookingRepo{}
	uc := NewUseCase(repo, slots, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate(), SlotID: "12"})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"18:00"}, repo.lastStarts)
}

func TestExecute_ExpandsDuplicateSlotRows(t *testing.T) {
	// Справочник содержит второй слот с тем же каноническим стартом
	slots := &mockTimeSlotRepo{
		byStartTime: map[types.TimeString][]*domain.TimeSlot{
			"13:00": {
				{ID: 8, StartTime: "13:00"},
			},
		},
	}
	repo := &mockBookingRepo{}
	uc := NewUseCase(repo, slots, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate(), SlotID: "a2"})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"13:00"}, repo.lastStarts)
}

func TestExecute_PrefersExplicitStartTime(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := NewUseCase(repo, &mockTimeSlotRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:      testDate(),
		SlotID:    "a2",
		StartTime: "2:00 PM",
	})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"14:00"}, repo.lastStarts)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockTimeSlotRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: "a2"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepoErrorIsInternal(t *testing.T) {
	repo := &mockBookingRepo{err: errors.New("boom")}
	uc := NewUseCase(repo, &mockTimeSlotRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate(), SlotID: "a2"})
	assert.ErrorIs(t, err, ErrInternal)
}
