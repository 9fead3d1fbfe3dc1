package get_week_schedule

import "github.com/m04kA/PacificPool/internal/domain"

// Request запрос недельной сетки
type Request struct {
	UserID int64
	Date   domain.Date // любой день недели; пустая - текущее представление или сегодня
	Shift  int         // -1 предыдущая неделя, 0 текущая, +1 следующая
}
