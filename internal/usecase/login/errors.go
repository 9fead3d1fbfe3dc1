package login

import "errors"

var (
	// ErrInvalidInput поле не прошло проверку; детали в authservice.ValidationError
	ErrInvalidInput = errors.New("login: invalid input data")

	// ErrInvalidCredentials сервис отказал; причина в authservice.RejectionError
	ErrInvalidCredentials = errors.New("login: invalid credentials")

	// ErrAuthUnavailable сервис аутентификации недоступен
	ErrAuthUnavailable = errors.New("login: auth service unavailable")
)
