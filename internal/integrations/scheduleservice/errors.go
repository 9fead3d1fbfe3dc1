package scheduleservice

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork транспортная ошибка, неуспешный HTTP статус или битый ответ.
	// Вызывающая сторона сохраняет последние загруженные данные.
	ErrNetwork = errors.New("scheduleservice: network error")

	// ErrInvalidResponse ответ не удалось разобрать (всегда вместе с ErrNetwork)
	ErrInvalidResponse = errors.New("scheduleservice: invalid response")

	// ErrRejected сервис явно отклонил бронирование или отмену
	ErrRejected = errors.New("scheduleservice: request rejected")
)

// RejectionError отказ сервиса с причиной, которую нужно показать пользователю как есть
type RejectionError struct {
	StatusCode int
	Reason     string // пусто, если сервис причину не прислал
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
