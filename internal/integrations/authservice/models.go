package authservice

import (
	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/pkg/types"
)

const (
	actionLogin    = "login"
	actionRegister = "register"
)

// LoginRequest данные формы входа
type LoginRequest struct {
	Email    string
	Password string
}

// RegisterRequest данные формы регистрации
type RegisterRequest struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

type loginPayload struct {
	Action   string `json:"action"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerPayload подтверждение пароля проверяется на клиенте и не отправляется
type registerPayload struct {
	Action   string `json:"action"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type userDTO struct {
	ID    types.FlexibleID `json:"id"`
	Name  string           `json:"name"`
	Email string           `json:"email"`
	Phone string           `json:"phone"`
}

func (u userDTO) toDomain() domain.User {
	return domain.User{
		ID:    u.ID.Int64(),
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

// authResponse ответ сервиса; success отсутствует = неуспех
type authResponse struct {
	Success *bool    `json:"success"`
	User    *userDTO `json:"user"`
	Error   string   `json:"error"`
}
