package domain

// Booking a user's claim on one session, identified by the server-issued ID
type Booking struct {
	ID        int64
	SessionID int64
	UserID    int64
}

// User produced by the auth collaborator; the booking core only needs ID
type User struct {
	ID    int64
	Name  string
	Email string
	Phone string
}
