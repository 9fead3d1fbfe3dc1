package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SessionID <= 0 {
		return fmt.Errorf("%w: sessionId must be positive", ErrInvalidInput)
	}

	return nil
}
