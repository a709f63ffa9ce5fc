package get_booked_courts

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии даты или идентификатора слота
	ErrInvalidInput = errors.New("get_booked_courts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_booked_courts: internal error")
)
