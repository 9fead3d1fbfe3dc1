package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PacificPool/internal/service/coordinator"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	coordinators Coordinators
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(coordinators Coordinators, logger Logger) *UseCase {
	return &UseCase{
		coordinators: coordinators,
		logger:       logger,
	}
}

// Execute отменяет активное бронирование. Без бронирования - успешный no-op.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	c := uc.coordinators.Get(req.UserID)

	active := c.Snapshot().ActiveBooking
	if active == nil {
		uc.logger.Info("CancelBooking: user=%d has no active booking", req.UserID)
		return &Response{Cancelled: false}, nil
	}
	booking := *active

	uc.logger.Info("CancelBooking: user=%d, booking=%d, session=%d", req.UserID, booking.ID, booking.SessionID)

	if err := c.Cancel(ctx); err != nil {
		var berr *coordinator.BookingError
		switch {
		case errors.Is(err, coordinator.ErrActionInFlight):
			uc.logger.Warn("CancelBooking: booking id=%d already in progress", booking.ID)
			return nil, fmt.Errorf("%w: %v", ErrInProgress, err)
		case errors.As(err, &berr) && berr.Rejected:
			uc.logger.Warn("CancelBooking: booking id=%d rejected: %s", booking.ID, berr.Reason)
			return nil, fmt.Errorf("%w: %w", ErrCancelRejected, err)
		default:
			uc.logger.Error("CancelBooking: booking id=%d failed: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: %w", ErrCancelFailed, err)
		}
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled", booking.ID)
	return &Response{Cancelled: true, BookingID: booking.ID, SessionID: booking.SessionID}, nil
}
