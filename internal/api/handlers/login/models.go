package login

import (
	"errors"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/integrations/authservice"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse пользователь; ID передается в X-User-ID последующих запросов
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
}

// FieldErrorResponse ошибка конкретного поля формы
type FieldErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

func FromUser(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

func fieldError(err error) (FieldErrorResponse, bool) {
	var verr *authservice.ValidationError
	if !errors.As(err, &verr) {
		return FieldErrorResponse{}, false
	}
	return FieldErrorResponse{Error: verr.Message, Field: verr.Field}, true
}

func rejectionReason(err error, fallback string) string {
	var rerr *authservice.RejectionError
	if errors.As(err, &rerr) && rerr.Reason != "" {
		return rerr.Reason
	}
	return fallback
}
