package create_booking

import "github.com/m04kA/PacificPool/internal/service/coordinator/models"

// Request запрос на бронирование сеанса
type Request struct {
	UserID    int64
	SessionID int64
}

// Response созданное бронирование и сеанс после перезагрузки расписания
type Response struct {
	BookingID int64               `json:"bookingId"`
	SessionID int64               `json:"sessionId"`
	Session   *models.SessionView `json:"session"`
}
