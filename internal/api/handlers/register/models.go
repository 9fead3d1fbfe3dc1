package register

import (
	"github.com/m04kA/PacificPool/internal/api/handlers/login"
	registerUC "github.com/m04kA/PacificPool/internal/usecase/register"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r RegisterRequest) ToUseCaseRequest() *registerUC.Request {
	return &registerUC.Request{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

type RegisterResponse struct {
	User login.UserResponse `json:"user"`
}
