package register

import "errors"

var (
	// ErrInvalidInput поле формы не прошло проверку
	ErrInvalidInput = errors.New("register: invalid input data")

	// ErrRegistrationRejected сервис отказал (например, email занят)
	ErrRegistrationRejected = errors.New("register: registration rejected")

	// ErrAuthUnavailable сервис аутентификации недоступен
	ErrAuthUnavailable = errors.New("register: auth service unavailable")
)
