package authservice

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation данные формы не прошли проверку, запрос не отправлялся
	ErrValidation = errors.New("authservice: validation failed")

	// ErrNetwork транспортная ошибка, 5xx или битый ответ
	ErrNetwork = errors.New("authservice: network error")

	// ErrInvalidResponse ответ не удалось разобрать (всегда вместе с ErrNetwork)
	ErrInvalidResponse = errors.New("authservice: invalid response")

	// ErrRejected сервис отклонил вход или регистрацию
	ErrRejected = errors.New("authservice: request rejected")
)

// ValidationError ошибка заполнения конкретного поля формы
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// RejectionError отказ сервиса; Reason показывается пользователю как есть
type RejectionError struct {
	StatusCode int
	Reason     string
}

func (e *RejectionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s (status %d)", ErrRejected.Error(), e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", ErrRejected.Error(), e.Reason)
}

func (e *RejectionError) Unwrap() error {
	return ErrRejected
}

func networkError(format string, v ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNetwork, fmt.Sprintf(format, v...))
}

func invalidResponse(format string, v ...interface{}) error {
	return fmt.Errorf("%w: %w: %s", ErrNetwork, ErrInvalidResponse, fmt.Sprintf(format, v...))
}
