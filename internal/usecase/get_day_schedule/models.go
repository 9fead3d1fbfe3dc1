package get_day_schedule

import "github.com/m04kA/PacificPool/internal/domain"

// Request запрос дневного расписания
type Request struct {
	UserID int64
	Date   domain.Date // пустая - сегодня
}
