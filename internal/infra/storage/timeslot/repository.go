package timeslot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	"github.com/m04kA/Eclipse-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Eclipse-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

var slotColumns = []string{
	"id",
	"legacy_id",
	"start_time",
	"end_time",
	"section",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий справочника временных слотов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по числовому идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByLegacyID получает слот по 24-символьному hex-идентификатору
// из старого документного хранилища
func (r *Repository) GetByLegacyID(ctx context.Context, legacyID string) (*domain.TimeSlot, error) {
	return r.getOne(ctx, squirrel.Eq{"legacy_id": legacyID})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTimeSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// ListActive получает все активные слоты, отсортированные по времени начала
func (r *Repository) ListActive(ctx context.Context) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"active": true}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// ListByStartTime получает все активные слоты с указанным каноническим
// временем начала. Один старт может быть представлен несколькими записями
// справочника - проверка доступности учитывает их все.
func (r *Repository) ListByStartTime(ctx context.Context, startTime types.TimeString) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"start_time": startTime, "active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStartTime - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStartTime - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// Create добавляет слот в справочник. Используется только сидированием.
func (r *Repository) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns("legacy_id", "start_time", "end_time", "section", "active").
		Values(slot.LegacyID, slot.StartTime, slot.EndTime, slot.Section, slot.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.LegacyID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Section,
		&slot.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
