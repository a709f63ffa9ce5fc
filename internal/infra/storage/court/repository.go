package court

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	"github.com/m04kA/Eclipse-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Eclipse-BookingService/pkg/psqlbuilder"
)

var courtColumns = []string{
	"id",
	"location_id",
	"name",
	"court_number",
	"court_type",
	"status",
	"price_per_hour",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий справочника кортов.
// Корты - статичные данные, заводятся сидированием; путь записи бронирования
// делает здесь только строгие чтения.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByNumber получает корт по внутреннему номеру
func (r *Repository) GetByNumber(ctx context.Context, courtNumber int) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"court_number": courtNumber, "active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	court, err := scanCourt(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan court: %v", ErrScanRow, err)
	}

	return court, nil
}

// ListActive получает все активные корты, отсортированные по номеру
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"active": true}).
		OrderBy("court_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// Create добавляет корт. Используется только сидированием.
func (r *Repository) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courts").
		Columns("location_id", "name", "court_number", "court_type", "status", "price_per_hour", "active").
		Values(court.LocationID, court.Name, court.CourtNumber, court.CourtType, court.Status, court.PricePerHour, court.Active).
		Suffix("ON CONFLICT (court_number) DO NOTHING RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&court.ID, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		// Корт с таким номером уже заведён
		return r.GetByNumber(ctx, court.CourtNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return court, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCourt(row rowScanner) (*domain.Court, error) {
	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&court.ID,
		&court.LocationID,
		&court.Name,
		&court.CourtNumber,
		&court.CourtType,
		&court.Status,
		&court.PricePerHour,
		&court.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}
