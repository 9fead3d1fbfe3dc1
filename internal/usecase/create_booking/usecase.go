package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PacificPool/internal/service/coordinator"
	"github.com/m04kA/PacificPool/internal/service/coordinator/models"
)

// UseCase use case для бронирования сеанса
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

// Execute бронирует сеанс из загруженного расписания пользователя.
// Итог определяет только ответ сервиса; места всегда берутся из перезагрузки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, session=%d", req.UserID, req.SessionID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	c := uc.coordinators.Get(req.UserID)

	bookingID, err := c.Book(ctx, req.SessionID)
	if err != nil {
		return nil, uc.translate(req, err)
	}

	resp := &Response{BookingID: bookingID, SessionID: req.SessionID}

	snap := c.Snapshot()
	if session, ok := snap.Session(req.SessionID); ok {
		view := models.FromSession(snap, session)
		resp.Session = &view
	}

	uc.logger.Info("CreateBooking: user=%d, session=%d, booking=%d", req.UserID, req.SessionID, bookingID)
	return resp, nil
}

func (uc *UseCase) translate(req *Request, err error) error {
	var berr *coordinator.BookingError

	switch {
	case errors.Is(err, coordinator.ErrSessionUnknown):
		uc.logger.Warn("CreateBooking: session id=%d is not loaded for user=%d", req.SessionID, req.UserID)
		return fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	case errors.Is(err, coordinator.ErrSessionFull):
		uc.logger.Warn("CreateBooking: session id=%d is full", req.SessionID)
		return fmt.Errorf("%w: %v", ErrSessionFull, err)
	case errors.Is(err, coordinator.ErrActionInFlight):
		uc.logger.Warn("CreateBooking: session id=%d already in progress", req.SessionID)
		return fmt.Errorf("%w: %v", ErrInProgress, err)
	case errors.Is(err, coordinator.ErrActiveBookingHeld):
		uc.logger.Warn("CreateBooking: user=%d already holds a booking", req.UserID)
		return fmt.Errorf("%w: %v", ErrAlreadyBooked, err)
	case errors.As(err, &berr) && berr.Rejected:
		uc.logger.Warn("CreateBooking: session id=%d rejected: %s", req.SessionID, berr.Reason)
		return fmt.Errorf("%w: %w", ErrBookingRejected, err)
	default:
		uc.logger.Error("CreateBooking: session id=%d failed: %v", req.SessionID, err)
		return fmt.Errorf("%w: %w", ErrBookingFailed, err)
	}
}
