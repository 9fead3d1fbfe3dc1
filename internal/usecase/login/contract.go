package login

import (
	"context"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/integrations/authservice"
)

// AuthClient сервис аутентификации (реализуется *authservice.Client)
type AuthClient interface {
	Login(ctx context.Context, req authservice.LoginRequest) (*domain.User, error)
}

// Sessions координаторы пользователей; при входе состояние начинается заново
type Sessions interface {
	Remove(userID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
