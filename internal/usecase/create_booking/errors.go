package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSessionNotFound сеанса нет в загруженном расписании пользователя
	ErrSessionNotFound = errors.New("create_booking: session not found")

	// ErrSessionFull мест нет
	ErrSessionFull = errors.New("create_booking: session is full")

	// ErrInProgress по сеансу уже выполняется запрос
	ErrInProgress = errors.New("create_booking: booking already in progress")

	// ErrAlreadyBooked у пользователя уже есть активное бронирование
	ErrAlreadyBooked = errors.New("create_booking: user already holds a booking")

	// ErrBookingRejected сервис расписания отказал; причина в coordinator.BookingError
	ErrBookingRejected = errors.New("create_booking: booking rejected")

	// ErrBookingFailed сервис расписания недоступен
	ErrBookingFailed = errors.New("create_booking: booking failed")
)
