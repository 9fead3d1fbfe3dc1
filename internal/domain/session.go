package domain

import (
	"fmt"

	"github.com/m04kA/PacificPool/pkg/types"
)

// Session a bookable pool time slot.
// AvailableSpots is server-derived; the client never adjusts it.
type Session struct {
	ID             int64
	Date           Date
	Time           types.TimeString // slot start, fixed one-hour width
	Instructor     string
	Specialization string
	MaxCapacity    int
	AvailableSpots int
}

// Validate checks MaxCapacity > 0 and 0 <= AvailableSpots <= MaxCapacity
func (s *Session) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidSession)
	}
	if s.Date.IsZero() {
		return fmt.Errorf("%w: session %d has no date", ErrInvalidSession, s.ID)
	}
	if err := s.Time.Validate(); err != nil {
		return fmt.Errorf("%w: session %d: %v", ErrInvalidSession, s.ID, err)
	}
	if s.MaxCapacity <= 0 {
		return fmt.Errorf("%w: session %d: max capacity %d", ErrInvalidSession, s.ID, s.MaxCapacity)
	}
	if s.AvailableSpots < 0 || s.AvailableSpots > s.MaxCapacity {
		return fmt.Errorf("%w: session %d: available %d of %d", ErrInvalidSession, s.ID, s.AvailableSpots, s.MaxCapacity)
	}
	return nil
}

// IsFull returns true if the session has no available spots
func (s *Session) IsFull() bool {
	return s.AvailableSpots <= 0
}

// Key returns the (time, date) grid key of the session
func (s *Session) Key() SlotKey {
	return SlotKey{Time: s.Time, Date: s.Date}
}

// Availability classifies the session's remaining capacity
func (s *Session) Availability() (Availability, error) {
	return Classify(s.AvailableSpots, s.MaxCapacity)
}
