package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInProgress по бронированию уже выполняется запрос
	ErrInProgress = errors.New("cancel_booking: cancellation already in progress")

	// ErrCancelRejected сервис расписания отказал; причина в coordinator.BookingError
	ErrCancelRejected = errors.New("cancel_booking: cancellation rejected")

	// ErrCancelFailed сервис расписания недоступен
	ErrCancelFailed = errors.New("cancel_booking: cancellation failed")
)
