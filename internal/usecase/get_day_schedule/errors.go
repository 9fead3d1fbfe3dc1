package get_day_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_schedule: invalid input data")

	// ErrScheduleUnavailable расписание не загружалось ни разу и сервис недоступен
	ErrScheduleUnavailable = errors.New("get_day_schedule: schedule service unavailable")
)
