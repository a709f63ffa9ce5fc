package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	"github.com/m04kA/Eclipse-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Eclipse-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

const (
	// Имена constraint'ов из migrations/0001_init.up.sql
	slotUniqueConstraint = "uq_bookings_slot"
	codeUniqueConstraint = "bookings_booking_code_key"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"customer_name",
	"phone_number",
	"court_number",
	"booking_date",
	"start_time",
	"end_time",
	"number_of_players",
	"total_price",
	"notes",
	"status",
	"payment_status",
	"booking_code",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте есть активная транзакция, запрос выполняется в ней -
// путь создания бронирования всегда оборачивает проверку конфликта и вставку
// в сериализуемую транзакцию.
//
// Частичный уникальный индекс uq_bookings_slot - второй рубеж защиты от
// двойного бронирования: его нарушение транслируется в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"customer_name",
			"phone_number",
			"court_number",
			"booking_date",
			"start_time",
			"end_time",
			"number_of_players",
			"total_price",
			"notes",
			"status",
			"payment_status",
			"booking_code",
		).
		Values(
			booking.UserID,
			booking.CustomerName,
			booking.PhoneNumber,
			booking.CourtNumber,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.NumberOfPlayers,
			booking.TotalPrice,
			booking.Notes,
			booking.Status,
			booking.PaymentStatus,
			booking.BookingCode,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			switch pqErr.Constraint {
			case slotUniqueConstraint:
				return nil, ErrSlotTaken
			case codeUniqueConstraint:
				return nil, ErrCodeCollision
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByPhone получает бронирования клиента по номеру телефона,
// отсортированные от самых свежих. Опционально фильтрует по статусу.
func (r *Repository) GetByPhone(ctx context.Context, phoneNumber string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		OrderBy("booking_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetForDayAndStartTimes получает неотменённые бронирования на календарный
// день day с временем начала из startTimes. Используется проверкой доступности:
// несколько значений приходят, когда один канонический старт представлен
// несколькими записями справочника слотов.
func (r *Repository) GetForDayAndStartTimes(ctx context.Context, day time.Time, startTimes []types.TimeString) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(startTimes) == 0 {
		return []*domain.Booking{}, nil
	}

	starts := make([]string, len(startTimes))
	for i, t := range startTimes {
		starts[i] = t.String()
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": dateOnly(day)}).
		Where(squirrel.Eq{"start_time": starts}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("court_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForDayAndStartTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDayAndStartTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetConfirmedSlot ищет подтверждённое бронирование на день, корт (во
// внутренней нумерации) и каноническое время начала. Внутри транзакции
// добавляет FOR UPDATE, блокируя строку до конца проверки-вставки.
func (r *Repository) GetConfirmedSlot(ctx context.Context, day time.Time, courtNumber int, startTime types.TimeString) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"booking_date": dateOnly(day),
			"court_number": courtNumber,
			"start_time":   startTime,
			"status":       domain.StatusConfirmed,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedSlot - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedSlot - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListWithFilter получает бронирования с гибкой фильтрацией для админки.
// По умолчанию отменённые исключаются, если не запрошен конкретный статус
// и не установлен IncludeCancelled.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": dateOnly(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": dateOnly(*filter.EndDate)})
	}
	if filter.CourtNumber != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"court_number": *filter.CourtNumber})
	}
	if filter.PhoneNumber != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"phone_number": *filter.PhoneNumber})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	// Для одного дня сортируем по времени, для периода - от свежих к старым
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("start_time ASC, court_number ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel помечает бронирование отменённым (soft delete).
// Физическое удаление есть только у админского Delete.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete физически удаляет бронирование. Только для админки.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CustomerName,
		&booking.PhoneNumber,
		&booking.CourtNumber,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.NumberOfPlayers,
		&booking.TotalPrice,
		&booking.Notes,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.BookingCode,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// dateOnly обнуляет время - сопоставление бронирований идёт по календарному дню
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
