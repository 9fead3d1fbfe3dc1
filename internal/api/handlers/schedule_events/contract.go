package schedule_events

import (
	"context"

	"github.com/m04kA/PacificPool/internal/service/coordinator/models"
	watchSchedule "github.com/m04kA/PacificPool/internal/usecase/watch_schedule"
)

type WatchScheduleUseCase interface {
	Execute(ctx context.Context, req *watchSchedule.Request) (<-chan *models.ScheduleEvent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
