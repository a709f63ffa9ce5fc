package verifyservice

import "errors"

var (
	// ErrTokenRejected возвращается, когда сервис проверки отклонил токен
	ErrTokenRejected = errors.New("verifyservice client: token rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("verifyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("verifyservice client: invalid response")
)
