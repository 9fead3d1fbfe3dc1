package coordinator

import (
	"context"

	"github.com/m04kA/PacificPool/internal/domain"
)

// SessionFetcher источник сеансов (реализуется scheduleservice.Client)
type SessionFetcher interface {
	FetchSessions(ctx context.Context, date domain.Date) ([]domain.Session, error)
	FetchSessionsForRange(ctx context.Context, dates []domain.Date) ([]domain.Session, error)
}

// BookingClient создание и отмена бронирований (реализуется scheduleservice.Client)
type BookingClient interface {
	CreateBooking(ctx context.Context, userID, sessionID int64) (int64, error)
	CancelBooking(ctx context.Context, bookingID int64) error
}

// Metrics учет исходов действий (реализуется *metrics.Metrics)
type Metrics interface {
	IncBookingAction(action, result string)
	IncRefetch(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
