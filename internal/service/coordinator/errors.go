package coordinator

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionUnknown сеанса нет в загруженном расписании
	ErrSessionUnknown = errors.New("coordinator: session is not loaded")

	// ErrSessionFull мест нет, запрос не отправляется
	ErrSessionFull = errors.New("coordinator: session is full")

	// ErrActionInFlight по этому сеансу уже выполняется запрос
	ErrActionInFlight = errors.New("coordinator: action already in flight")

	// ErrActiveBookingHeld у пользователя уже есть бронирование (или оно оформляется)
	ErrActiveBookingHeld = errors.New("coordinator: active booking already held")

	// ErrLoadSuperseded пока шла загрузка, началась более новая; ее результат не применен
	ErrLoadSuperseded = errors.New("coordinator: load superseded by a newer one")

	// ErrBookingRejected сервис явно отказал в бронировании или отмене
	ErrBookingRejected = errors.New("coordinator: booking rejected")
)

const (
	msgBookFailed   = "Не удалось забронировать сеанс"
	msgCancelFailed = "Не удалось отменить бронирование"
	msgFetchFailed  = "Не удалось загрузить расписание"
)

// BookingError неуспешное бронирование или отмена.
// Reason готов к показу: причина сервиса как есть или общая фраза.
type BookingError struct {
	Op        Action
	SessionID int64
	Reason    string
	Rejected  bool // сервис ответил отказом, а не упал
	Err       error
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("coordinator: %s session %d: %s: %v", e.Op, e.SessionID, e.Reason, e.Err)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

// Is errors.Is(err, ErrBookingRejected) только для явного отказа
func (e *BookingError) Is(target error) bool {
	return target == ErrBookingRejected && e.Rejected
}
