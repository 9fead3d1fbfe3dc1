package login

import "github.com/m04kA/PacificPool/internal/domain"

// Request запрос на вход
type Request struct {
	Email    string
	Password string
}

// Response вошедший пользователь
type Response struct {
	User domain.User
}
