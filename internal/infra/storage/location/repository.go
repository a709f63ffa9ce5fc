package location

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	"github.com/m04kA/Eclipse-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Eclipse-BookingService/pkg/psqlbuilder"
)

var locationColumns = []string{
	"id",
	"name",
	"address",
	"status",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий площадок. Одна активная площадка на практике.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает все активные площадки
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(locationColumns...).
		From("locations").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return locations, nil
}

// Create добавляет площадку. Используется только сидированием.
func (r *Repository) Create(ctx context.Context, loc *domain.Location) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("locations").
		Columns("name", "address", "status", "active").
		Values(loc.Name, loc.Address, loc.Status, loc.Active).
		Suffix("ON CONFLICT (name) DO NOTHING RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&loc.ID, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return r.getByName(ctx, loc.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time

	return loc, nil
}

func (r *Repository) getByName(ctx context.Context, name string) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(locationColumns...).
		From("locations").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getByName - build select query: %v", ErrBuildQuery, err)
	}

	loc, err := scanLocation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByName - scan location: %v", ErrScanRow, err)
	}

	return loc, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLocation(row rowScanner) (*domain.Location, error) {
	var loc domain.Location
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&loc.ID,
		&loc.Name,
		&loc.Address,
		&loc.Status,
		&loc.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time

	return &loc, nil
}
