package get_day_schedule

import (
	"context"

	"github.com/m04kA/PacificPool/internal/service/coordinator/models"
	getDaySchedule "github.com/m04kA/PacificPool/internal/usecase/get_day_schedule"
)

type GetDayScheduleUseCase interface {
	Execute(ctx context.Context, req *getDaySchedule.Request) (*models.DaySchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
