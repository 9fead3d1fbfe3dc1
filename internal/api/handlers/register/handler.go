package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/PacificPool/internal/api/handlers"
	"github.com/m04kA/PacificPool/internal/api/handlers/login"
	"github.com/m04kA/PacificPool/internal/integrations/authservice"
	registerUC "github.com/m04kA/PacificPool/internal/usecase/register"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRegisterRejected   = "Не удалось зарегистрироваться"
	msgAuthUnavailable    = "Сервис авторизации недоступен"
)

type Handler struct {
	useCase RegisterUseCase
	logger  Logger
}

func NewHandler(useCase RegisterUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var verr *authservice.ValidationError
		var rerr *authservice.RejectionError

		switch {
		case errors.As(err, &verr):
			handlers.RespondJSON(w, http.StatusBadRequest, login.FieldErrorResponse{Error: verr.Message, Field: verr.Field})

		case errors.Is(err, registerUC.ErrRegistrationRejected):
			msg := msgRegisterRejected
			if errors.As(err, &rerr) && rerr.Reason != "" {
				msg = rerr.Reason
			}
			handlers.RespondConflict(w, msg)

		default:
			h.logger.Error("POST /auth/register - Failed to register: error=%v", err)
			handlers.RespondServiceUnavailable(w, msgAuthUnavailable)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, RegisterResponse{User: login.FromUser(result.User)})
}
