package schedule_endpoint

import (
	"context"

	"github.com/m04kA/PacificPool/internal/domain"
)

type ScheduleService interface {
	ListSessions(ctx context.Context, date domain.Date) ([]domain.Session, error)
	Book(ctx context.Context, userID, sessionID int64) (int64, error)
	Cancel(ctx context.Context, bookingID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
