package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrSessionNotFound возвращается, когда сеанс не найден
	ErrSessionNotFound = errors.New("schedule: session not found")

	// ErrNoAvailableSpots возвращается, когда мест нет
	ErrNoAvailableSpots = errors.New("schedule: no available spots")

	// ErrAlreadyBooked у пользователя уже есть активное бронирование сеанса
	ErrAlreadyBooked = errors.New("schedule: booking already exists")

	// ErrBookingNotFound бронирование не найдено или уже отменено
	ErrBookingNotFound = errors.New("schedule: booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
