package get_week_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/PacificPool/internal/api/handlers"
	"github.com/m04kA/PacificPool/internal/api/middleware"
	"github.com/m04kA/PacificPool/internal/domain"
	getWeekSchedule "github.com/m04kA/PacificPool/internal/usecase/get_week_schedule"
)

const (
	msgMissingUserID       = "отсутствует идентификатор пользователя"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidShift        = "shift должен быть -1, 0 или 1"
	msgScheduleUnavailable = "Не удалось загрузить расписание"
)

type Handler struct {
	useCase GetWeekScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/week?date=YYYY-MM-DD&shift=-1|0|1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	req := &getWeekSchedule.Request{UserID: userID}

	if raw := query.Get("date"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /schedule/week - Invalid date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = date
	}

	if raw := query.Get("shift"); raw != "" {
		shift, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidShift)
			return
		}
		req.Shift = shift
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getWeekSchedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidShift)
		case errors.Is(err, getWeekSchedule.ErrScheduleUnavailable):
			handlers.RespondServiceUnavailable(w, msgScheduleUnavailable)
		default:
			h.logger.Error("GET /schedule/week - Failed to get schedule: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
