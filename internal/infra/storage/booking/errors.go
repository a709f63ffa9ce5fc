package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается при нарушении частичного уникального индекса
	// (booking_date, court_number, start_time) для подтверждённых бронирований.
	// Это страховка на уровне хранилища от двойного бронирования.
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrCodeCollision возвращается при коллизии кода бронирования.
	// Практически не случается, но обрабатывается повторной генерацией.
	ErrCodeCollision = errors.New("booking.repository: booking code collision")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
