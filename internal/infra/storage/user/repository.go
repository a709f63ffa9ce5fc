package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	"github.com/m04kA/Eclipse-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Eclipse-BookingService/pkg/psqlbuilder"
)

var userColumns = []string{
	"id",
	"name",
	"email",
	"phone_number",
	"role",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий пользователей. Телефон - естественный ключ.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPhone получает пользователя по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - scan user: %v", ErrScanRow, err)
	}

	return user, nil
}

// Upsert создает пользователя по телефону или обновляет имя существующего.
// Первое бронирование с нового номера неявно регистрирует клиента, повторное -
// подхватывает актуальное имя из формы.
func (r *Repository) Upsert(ctx context.Context, name, phoneNumber string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("name", "phone_number", "role", "active").
		Values(name, phoneNumber, domain.RoleUser, true).
		Suffix(`ON CONFLICT (phone_number) DO UPDATE
			SET name = EXCLUDED.name, updated_at = NOW()
			RETURNING ` + joinColumns(userColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return user, nil
}

// Create добавляет пользователя с явной ролью. Используется сидированием
// для заведения администратора.
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("name", "email", "phone_number", "role", "active").
		Values(user.Name, user.Email, user.PhoneNumber, user.Role, user.Active).
		Suffix("ON CONFLICT (phone_number) DO NOTHING RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.ID, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return r.GetByPhone(ctx, user.PhoneNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return user, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PhoneNumber,
		&user.Role,
		&user.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return &user, nil
}

func joinColumns(columns []string) string {
	out := ""
	for i, c := range columns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
