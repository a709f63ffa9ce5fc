package domain

import "time"

// UserRole роль пользователя
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User клиент или администратор. Телефон - естественный ключ:
// первое бронирование с нового номера неявно регистрирует клиента.
type User struct {
	ID          int64
	Name        string
	Email       *string
	PhoneNumber string
	Role        UserRole
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAdmin возвращает true для администратора
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
