package register

import "github.com/m04kA/PacificPool/internal/domain"

// Request данные формы регистрации
type Request struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Response созданный пользователь
type Response struct {
	User domain.User
}
