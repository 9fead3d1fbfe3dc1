package scheduleservice

import "github.com/m04kA/PacificPool/pkg/types"

// sessionDTO сеанс в том виде, в котором его отдаёт сервис расписания.
// Разные версии сервиса присылают id числом или строкой, время с секундами
// или без, инструктора null (LEFT JOIN без инструктора).
type sessionDTO struct {
	ID             types.FlexibleID `json:"id"`
	Date           string           `json:"date"`
	Time           string           `json:"time"`
	Instructor     *string          `json:"instructor"`
	Specialization *string          `json:"specialization"`
	MaxCapacity    int              `json:"maxCapacity"`
	AvailableSpots int              `json:"availableSpots"`
}

// sessionsResponse ответ GET ?date=YYYY-MM-DD; отсутствующий ключ sessions = пустой день
type sessionsResponse struct {
	Sessions []sessionDTO `json:"sessions"`
}

// createBookingRequest тело POST
type createBookingRequest struct {
	UserID    int64 `json:"userId"`
	SessionID int64 `json:"sessionId"`
}

// createBookingResponse ответ POST; success отсутствует = неуспех
type createBookingResponse struct {
	Success   *bool            `json:"success"`
	BookingID types.FlexibleID `json:"bookingId"`
	Error     string           `json:"error"`
}

// cancelBookingRequest тело DELETE
type cancelBookingRequest struct {
	BookingID int64 `json:"bookingId"`
}

// cancelBookingResponse ответ DELETE
type cancelBookingResponse struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}
