package register

import (
	"context"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/integrations/authservice"
)

// AuthClient сервис аутентификации (реализуется *authservice.Client)
type AuthClient interface {
	Register(ctx context.Context, req authservice.RegisterRequest) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
