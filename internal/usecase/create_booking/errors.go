package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных;
	// текст ошибки перечисляет отсутствующие поля
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCourtNotFound возвращается, когда корт с указанным номером не найден.
	// Автосоздание справочных данных из пути записи не делается - корты
	// заводятся сидированием.
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCourtUnavailable возвращается, когда корт закрыт или на обслуживании
	ErrCourtUnavailable = errors.New("create_booking: court is not available")

	// ErrSlotAlreadyBooked возвращается, когда на дату+корт+время уже есть
	// подтверждённое бронирование
	ErrSlotAlreadyBooked = errors.New("create_booking: court already booked for this slot")

	// ErrVerificationFailed возвращается, когда сервис проверки отклонил токен
	ErrVerificationFailed = errors.New("create_booking: phone verification failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
