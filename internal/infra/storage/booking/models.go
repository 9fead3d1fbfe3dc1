package booking

// Status статус бронирования в таблице bookings
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Booking строка таблицы bookings
type Booking struct {
	ID        int64
	UserID    int64
	SessionID int64
	Status    Status
}
