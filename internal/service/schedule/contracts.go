package schedule

import (
	"context"

	"github.com/m04kA/PacificPool/internal/domain"
	bookingRepo "github.com/m04kA/PacificPool/internal/infra/storage/booking"
)

// SessionRepository интерфейс репозитория сеансов
type SessionRepository interface {
	ListByDate(ctx context.Context, date domain.Date) ([]domain.Session, error)
	LockAvailableSpots(ctx context.Context, id int64) (int, error)
	ReserveSpot(ctx context.Context, id int64) error
	ReleaseSpot(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, userID, sessionID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*bookingRepo.Booking, error)
	CancelActive(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
