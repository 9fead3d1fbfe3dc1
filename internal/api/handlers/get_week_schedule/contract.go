package get_week_schedule

import (
	"context"

	"github.com/m04kA/PacificPool/internal/service/coordinator/models"
	getWeekSchedule "github.com/m04kA/PacificPool/internal/usecase/get_week_schedule"
)

type GetWeekScheduleUseCase interface {
	Execute(ctx context.Context, req *getWeekSchedule.Request) (*models.WeekSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
