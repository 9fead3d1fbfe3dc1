package dismiss_notice

import (
	"github.com/m04kA/PacificPool/internal/service/coordinator/models"
	dismissNotice "github.com/m04kA/PacificPool/internal/usecase/dismiss_notice"
)

type DismissNoticeUseCase interface {
	Execute(req *dismissNotice.Request) (*models.ScheduleEvent, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
}
