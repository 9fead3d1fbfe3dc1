package create_booking

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SessionID int64 `json:"sessionId"`
}
