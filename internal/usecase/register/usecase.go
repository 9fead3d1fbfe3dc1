package register

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PacificPool/internal/integrations/authservice"
)

// UseCase use case регистрации пользователя
type UseCase struct {
	auth   AuthClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(auth AuthClient, logger Logger) *UseCase {
	return &UseCase{
		auth:   auth,
		logger: logger,
	}
}

// Execute регистрирует пользователя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	user, err := uc.auth.Register(ctx, authservice.RegisterRequest{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrValidation):
			uc.logger.Warn("Register: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		case errors.Is(err, authservice.ErrRejected):
			uc.logger.Warn("Register: rejected: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrRegistrationRejected, err)
		default:
			uc.logger.Error("Register: auth service failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
		}
	}

	uc.logger.Info("Register: user=%d", user.ID)
	return &Response{User: *user}, nil
}
