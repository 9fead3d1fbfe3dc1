package dismiss_notice

import (
	"net/http"

	"github.com/m04kA/PacificPool/internal/api/handlers"
	"github.com/m04kA/PacificPool/internal/api/middleware"
	dismissNotice "github.com/m04kA/PacificPool/internal/usecase/dismiss_notice"
)

const msgMissingUserID = "отсутствует идентификатор пользователя"

type Handler struct {
	useCase DismissNoticeUseCase
	logger  Logger
}

func NewHandler(useCase DismissNoticeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/notice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(&dismissNotice.Request{UserID: userID})
	if err != nil {
		h.logger.Warn("DELETE /notice - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
