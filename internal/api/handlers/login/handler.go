package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/PacificPool/internal/api/handlers"
	loginUC "github.com/m04kA/PacificPool/internal/usecase/login"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidCredentials  = "Неверный email или пароль"
	msgAuthUnavailable     = "Сервис авторизации недоступен"
	msgInvalidFieldDefault = "Проверьте заполнение формы"
)

type Handler struct {
	useCase LoginUseCase
	logger  Logger
}

func NewHandler(useCase LoginUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &loginUC.Request{Email: req.Email, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, loginUC.ErrInvalidInput):
			if body, ok := fieldError(err); ok {
				handlers.RespondJSON(w, http.StatusBadRequest, body)
				return
			}
			handlers.RespondBadRequest(w, msgInvalidFieldDefault)

		case errors.Is(err, loginUC.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, rejectionReason(err, msgInvalidCredentials))

		default:
			h.logger.Error("POST /auth/login - Failed to login: error=%v", err)
			handlers.RespondServiceUnavailable(w, msgAuthUnavailable)
		}
		return
	}

	h.logger.Info("POST /auth/login - User logged in: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{User: FromUser(result.User)})
}
