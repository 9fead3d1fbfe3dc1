package schedule_endpoint

import "github.com/m04kA/PacificPool/internal/domain"

// BookRequest тело POST
type BookRequest struct {
	UserID    int64 `json:"userId"`
	SessionID int64 `json:"sessionId"`
}

// CancelRequest тело DELETE
type CancelRequest struct {
	BookingID int64 `json:"bookingId"`
}

// SessionResponse сеанс; time в формате Postgres TIME (HH:MM:SS)
type SessionResponse struct {
	ID             int64   `json:"id"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	MaxCapacity    int     `json:"maxCapacity"`
	AvailableSpots int     `json:"availableSpots"`
	Instructor     *string `json:"instructor"`
	Specialization *string `json:"specialization"`
}

type SessionsResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

type BookResponse struct {
	Success   bool  `json:"success"`
	BookingID int64 `json:"bookingId"`
}

type CancelResponse struct {
	Success bool `json:"success"`
}

func FromSessions(sessions []domain.Session) SessionsResponse {
	out := SessionsResponse{Sessions: make([]SessionResponse, 0, len(sessions))}
	for _, s := range sessions {
		out.Sessions = append(out.Sessions, SessionResponse{
			ID:             s.ID,
			Date:           s.Date.String(),
			Time:           string(s.Time) + ":00",
			MaxCapacity:    s.MaxCapacity,
			AvailableSpots: s.AvailableSpots,
			Instructor:     optional(s.Instructor),
			Specialization: optional(s.Specialization),
		})
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
