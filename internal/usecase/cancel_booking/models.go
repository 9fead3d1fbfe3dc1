package cancel_booking

// Request запрос на отмену активного бронирования пользователя
type Request struct {
	UserID int64
}

// Response Cancelled=false, если отменять было нечего
type Response struct {
	Cancelled bool  `json:"cancelled"`
	BookingID int64 `json:"bookingId,omitempty"`
	SessionID int64 `json:"sessionId,omitempty"`
}
