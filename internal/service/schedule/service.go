package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PacificPool/internal/domain"
	bookingRepo "github.com/m04kA/PacificPool/internal/infra/storage/booking"
	sessionRepo "github.com/m04kA/PacificPool/internal/infra/storage/session"
)

// Service сервис расписания: сеансы на дату, бронирование и отмена
type Service struct {
	sessions  SessionRepository
	bookings  BookingRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	sessions SessionRepository,
	bookings BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		sessions:  sessions,
		bookings:  bookings,
		txManager: txManager,
		logger:    logger,
	}
}

// ListSessions сеансы на дату
func (s *Service) ListSessions(ctx context.Context, date domain.Date) ([]domain.Session, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	sessions, err := s.sessions.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListSessions: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ListSessions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSessions: date=%s, sessions=%d", date, len(sessions))
	return sessions, nil
}

// Book создает бронирование и занимает место в одной транзакции.
// Повторное бронирование после отмены возвращает прежний id.
func (s *Service) Book(ctx context.Context, userID, sessionID int64) (int64, error) {
	if userID <= 0 || sessionID <= 0 {
		return 0, fmt.Errorf("%w: userID and sessionID must be positive", ErrInvalidInput)
	}

	s.logger.Info("Book: user=%d, session=%d", userID, sessionID)

	var bookingID int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		spots, err := s.sessions.LockAvailableSpots(ctx, sessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: Book - lock session: %v", ErrInternal, err)
		}
		if spots <= 0 {
			return ErrNoAvailableSpots
		}

		id, err := s.bookings.Create(ctx, userID, sessionID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrAlreadyExists) {
				return ErrAlreadyBooked
			}
			return fmt.Errorf("%w: Book - create booking: %v", ErrInternal, err)
		}

		if err := s.sessions.ReserveSpot(ctx, sessionID); err != nil {
			if errors.Is(err, sessionRepo.ErrNoAvailableSpots) {
				return ErrNoAvailableSpots
			}
			return fmt.Errorf("%w: Book - reserve spot: %v", ErrInternal, err)
		}

		bookingID = id
		return nil
	})
	if err != nil {
		s.logBookFailure(userID, sessionID, err)
		return 0, err
	}

	s.logger.Info("Book: booking id=%d created for user=%d, session=%d", bookingID, userID, sessionID)
	return bookingID, nil
}

func (s *Service) logBookFailure(userID, sessionID int64, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrNoAvailableSpots), errors.Is(err, ErrAlreadyBooked):
		s.logger.Warn("Book: user=%d, session=%d: %v", userID, sessionID, err)
	default:
		s.logger.Error("Book: user=%d, session=%d: %v", userID, sessionID, err)
	}
}

// Cancel отменяет активное бронирование и возвращает место
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	s.logger.Info("Cancel: booking id=%d", bookingID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - get booking: %v", ErrInternal, err)
		}

		if err := s.bookings.CancelActive(ctx, booking.ID); err != nil {
			if errors.Is(err, bookingRepo.ErrNotActive) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - update booking: %v", ErrInternal, err)
		}

		if err := s.sessions.ReleaseSpot(ctx, booking.SessionID); err != nil {
			return fmt.Errorf("%w: Cancel - release spot: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found or not active", bookingID)
		} else {
			s.logger.Error("Cancel: booking id=%d: %v", bookingID, err)
		}
		return err
	}

	s.logger.Info("Cancel: booking id=%d cancelled", bookingID)
	return nil
}
