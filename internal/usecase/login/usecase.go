package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PacificPool/internal/integrations/authservice"
)

// UseCase use case входа пользователя
type UseCase struct {
	auth     AuthClient
	sessions Sessions
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(auth AuthClient, sessions Sessions, logger Logger) *UseCase {
	return &UseCase{
		auth:     auth,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute проверяет учетные данные и сбрасывает прежнее состояние расписания пользователя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	user, err := uc.auth.Login(ctx, authservice.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrValidation):
			uc.logger.Warn("Login: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		case errors.Is(err, authservice.ErrRejected):
			uc.logger.Warn("Login: rejected: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		default:
			uc.logger.Error("Login: auth service failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
		}
	}

	uc.sessions.Remove(user.ID)

	uc.logger.Info("Login: user=%d", user.ID)
	return &Response{User: *user}, nil
}
