package create_booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

// Моки

type mockBookingRepo struct {
	createFn       func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	getConfirmedFn func(ctx context.Context, day time.Time, court int, start types.TimeString) (*domain.Booking, error)
	created        []*domain.Booking
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if m.createFn != nil {
		return m.createFn(ctx, b)
	}
	out := *b
	out.ID = int64(len(m.created) + 1)
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	m.created = append(m.created, &out)
	return &out, nil
}

func (m *mockBookingRepo) GetConfirmedSlot(ctx context.Context, day time.Time, court int, start types.TimeString) (*domain.Booking, error) {
	if m.getConfirmedFn != nil {
		return m.getConfirmedFn(ctx, day, court, start)
	}
	return nil, bookingRepo.ErrBookingNotFound
}

type mockUserRepo struct {
	lastName  string
	lastPhone string
}

func (m *mockUserRepo) Upsert(ctx context.Context, name, phoneNumber string) (*domain.User, error) {
	m.lastName = name
	m.lastPhone = phoneNumber
	return &domain.User{ID: 7, Name: name, PhoneNumber: phoneNumber, Role: domain.RoleUser, Active: true}, nil
}

type mockCourtRepo struct {
	courts map[int]*domain.Court
}

func (m *mockCourtRepo) GetByNumber(ctx context.Context, courtNumber int) (*domain.Court, error) {
	if c, ok := m.courts[courtNumber]; ok {
		return c, nil
	}
	return nil, errors.New("court: court not found")
}

type mockTimeSlotRepo struct {
	byID     map[int64]*domain.TimeSlot
	byLegacy map[string]*domain.TimeSlot
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

type mockVerifier struct {
	err    error
	called bool
}

func (m *mockVerifier) VerifyToken(ctx context.Context, phoneNumber, token string) error {
	m.called = true
	return m.err
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockCodeGen struct {
	codes []string
	next  int
}

func (m *mockCodeGen) Generate() (string, error) {
	if m.next < len(m.codes) {
		code := m.codes[m.next]
		m.next++
		return code, nil
	}
	return "FALLBACK1", nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Хелперы

func bookableCourt(internal int) *domain.Court {
	return &domain.Court{
		ID:           int64(internal),
		LocationID:   1,
		Name:         "Court",
		CourtNumber:  internal,
		CourtType:    domain.CourtOutdoor,
		Status:       domain.CourtAvailable,
		PricePerHour: 600,
		Active:       true,
	}
}

func newTestUseCase(repo *mockBookingRepo, courts *mockCourtRepo, slots *mockTimeSlotRepo, verifier VerifyClient) (*UseCase, *mockUserRepo) {
	users := &mockUserRepo{}
	uc := NewUseCase(repo, users, courts, slots, verifier, &mockTxManager{}, nopLogger{})
	return uc, users
}

func TestExecute_CreatesBookingFromSectionCode(t *testing.T) {
	repo := &mockBookingRepo{}
	courts := &mockCourtRepo{courts: map[int]*domain.Court{
		// отображаемый 3 -> внутренний 5
		5: bookableCourt(5),
	}}
	uc, users := newTestUseCase(repo, courts, &mockTimeSlotRepo{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      "a2",
	})
	require.NoError(t, err)

	// a2 -> 13:00-14:00
	assert.Equal(t, types.TimeString("13:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("14:00"), resp.EndTime)

	// Клиенту возвращается тот же отображаемый номер, что он прислал
	assert.Equal(t, 3, resp.CourtNumber)

	// В хранилище ушёл внутренний номер
	require.Len(t, repo.created, 1)
	assert.Equal(t, 5, repo.created[0].CourtNumber)

	// Код бронирования: 8 символов A-Z0-9
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), resp.BookingCode)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.PaymentPayAtCourt), resp.PaymentStatus)
	assert.Equal(t, float64(600), resp.TotalPrice)
	assert.Equal(t, domain.DefaultPlayers, resp.NumberOfPlayers)

	// Клиент зарегистрирован по телефону
	assert.Equal(t, "Asha", users.lastName)
	assert.Equal(t, "9876543210", users.lastPhone)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &mockBookingRepo{
		getConfirmedFn: func(ctx context.Context, day time.Time, court int, start types.TimeString) (*domain.Booking, error) {
			return &domain.Booking{ID: 99, Status: domain.StatusConfirmed}, nil
		},
	}
	courts := &mockCourtRepo{courts: map[int]*domain.Court{5: bookableCourt(5)}}
	uc, _ := newTestUseCase(repo, courts, &mockTimeSlotRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      "a2",
	})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Empty(t, repo.created)
}

func TestExecute_UniqueIndexCatchesRace(t *testing.T) {
	// Проверка не увидела конкурента, но индекс отклонил вставку
	repo := &mockBookingRepo{
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			return nil, bookingRepo.ErrSlotTaken
		},
	}
	courts := &mockCourtRepo{courts: map[int]*domain.Court{5: bookableCourt(5)}}
	uc, _ := newTestUseCase(repo, courts, &mockTimeSlotRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      "a2",
	})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_RegeneratesCodeOnCollision(t *testing.T) {
	attempts := 0
	repo := &mockBookingRepo{}
	repo.createFn = func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
		attempts++
		if attempts == 1 {
			return nil, bookingRepo.ErrCodeCollision
		}
		out := *b
		out.ID = 1
		return &out, nil
	}
	courts := &mockCourtRepo{courts: map[int]*domain.Court{5: bookableCourt(5)}}
	uc, _ := newTestUseCase(repo, courts, &mockTimeSlotRepo{}, nil)
	uc.codeGen = &mockCodeGen{codes: []string{"AAAAAAAA", "BBBBBBBB"}}

	resp, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      "a2",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, "BBBBBBBB", resp.BookingCode)
}

func TestExecute_ExhaustsCodeAttempts(t *testing.T) {
	repo := &mockBookingRepo{
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			return nil, bookingRepo.ErrCodeCollision
		},
	}
	courts := &mockCourtRepo{courts: map[int]*domain.Court{5: bookableCourt(5)}}
	uc, _ := newTestUseCase(repo, courts, &mockTimeSlotRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      "a2",
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc, _ := newTestUseCase(&mockBookingRepo{}, &mockCourtRepo{courts: map[int]*domain.Court{}}, &mockTimeSlotRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      "a2",
	})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_CourtUnavailable(t *testing.T) {
	court := bookableCourt(5)
	court.Status = domain.CourtMaintenance
	courts := &mockCourtRepo{courts: map[int]*domain.Court{5: court}}
	uc, _ := newTestUseCase(&mockBookingRepo{}, courts, &mockTimeSlotRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      "a2",
	})
	assert.ErrorIs(t, err, ErrCourtUnavailable)
}

func TestExecute_UnparseableSlotUsesDefaultWindow(t *testing.T) {
	repo := &mockBookingRepo{}
	courts := &mockCourtRepo{courts: map[int]*domain.Court{5: bookableCourt(5)}}
	uc, _ := newTestUseCase(repo, courts, &mockTimeSlotRepo{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      "garbage-slot",
	})
	require.NoError(t, err)

	// Неразборчивый слот деградирует в окно по умолчанию, запись не валится
	assert.Equal(t, types.TimeString("08:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("09:00"), resp.EndTime)
}

func TestExecute_ResolvesLegacySlotID(t *testing.T) {
	legacyID := "65f1a2b3c4d5e6f7a8b9c0d1"
	slots := &mockTimeSlotRepo{byLegacy: map[string]*domain.TimeSlot{
		legacyID: {ID: 3, StartTime: "09:00", EndTime: "10:00", Section: domain.SectionMorning, Active: true},
	}}
	repo := &mockBookingRepo{}
	courts := &mockCourtRepo{courts: map[int]*domain.Court{5: bookableCourt(5)}}
	uc, _ := newTestUseCase(repo, courts, slots, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      legacyID,
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("10:00"), resp.EndTime)
}

func TestExecute_ResolvesNumericSlotID(t *testing.T) {
	slots := &mockTimeSlotRepo{byID: map[int64]*domain.TimeSlot{
		12: {ID: 12, StartTime: "18:00", EndTime: "19:00", Section: domain.SectionEvening, Active: true},
	}}
	repo := &mockBookingRepo{}
	courts := &mockCourtRepo{courts: map[int]*domain.Court{5: bookableCourt(5)}}
	uc, _ := newTestUseCase(repo, courts, slots, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      "12",
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), resp.StartTime)
}

func TestExecute_VerificationFailed(t *testing.T) {
	verifier := &mockVerifier{err: errors.New("verifyservice: token rejected")}
	courts := &mockCourtRepo{courts: map[int]*domain.Court{5: bookableCourt(5)}}
	uc, _ := newTestUseCase(&mockBookingRepo{}, courts, &mockTimeSlotRepo{}, verifier)

	_, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      "a2",
	})
	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.True(t, verifier.called)
}

func TestExecute_NilVerifierSkipsVerification(t *testing.T) {
	repo := &mockBookingRepo{}
	courts := &mockCourtRepo{courts: map[int]*domain.Court{5: bookableCourt(5)}}
	uc, _ := newTestUseCase(repo, courts, &mockTimeSlotRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Name:        "Asha",
		PhoneNumber: "9876543210",
		CourtNumber: 3,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		SlotID:      "a2",
	})
	assert.NoError(t, err)
}

func TestExecute_ClampsPlayers(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, domain.DefaultPlayers},
		{1, 1},
		{6, 6},
		{9, domain.MaxPlayers},
		{-2, domain.MinPlayers},
	}

	for _, tt := range tests {
		repo := &mockBookingRepo{}
		courts := &mockCourtRepo{courts: map[int]*domain.Court{5: bookableCourt(5)}}
		uc, _ := newTestUseCase(repo, courts, &mockTimeSlotRepo{}, nil)

		resp, err := uc.Execute(context.Background(), &Request{
			Name:            "Asha",
			PhoneNumber:     "9876543210",
			CourtNumber:     3,
			Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			SlotID:          "a2",
			NumberOfPlayers: tt.in,
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.NumberOfPlayers, "players %d", tt.in)
	}
}
