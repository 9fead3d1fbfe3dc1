package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/PacificPool/internal/api/handlers"
	"github.com/m04kA/PacificPool/internal/api/middleware"
	"github.com/m04kA/PacificPool/internal/domain"
	getDaySchedule "github.com/m04kA/PacificPool/internal/usecase/get_day_schedule"
)

const (
	msgMissingUserID       = "отсутствует идентификатор пользователя"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgScheduleUnavailable = "Не удалось загрузить расписание"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/day?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &getDaySchedule.Request{UserID: userID}
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /schedule/day - Invalid date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = date
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, getDaySchedule.ErrScheduleUnavailable):
			handlers.RespondServiceUnavailable(w, msgScheduleUnavailable)
		default:
			h.logger.Error("GET /schedule/day - Failed to get schedule: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
