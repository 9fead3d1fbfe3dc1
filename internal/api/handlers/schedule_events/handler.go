package schedule_events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/PacificPool/internal/api/handlers"
	"github.com/m04kA/PacificPool/internal/api/middleware"
	watchSchedule "github.com/m04kA/PacificPool/internal/usecase/watch_schedule"
)

const (
	msgMissingUserID     = "отсутствует идентификатор пользователя"
	msgStreamUnsupported = "потоковая передача не поддерживается"

	eventName         = "schedule"
	heartbeatInterval = 15 * time.Second
)

type Handler struct {
	useCase   WatchScheduleUseCase
	logger    Logger
	heartbeat time.Duration
}

func NewHandler(useCase WatchScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		logger:    logger,
		heartbeat: heartbeatInterval,
	}
}

// Handle GET /api/v1/schedule/events (text/event-stream)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /schedule/events - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamUnsupported)
		return
	}

	events, err := h.useCase.Execute(r.Context(), &watchSchedule.Request{UserID: userID})
	if err != nil {
		h.logger.Warn("GET /schedule/events - Failed to subscribe: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				h.logger.Error("GET /schedule/events - Failed to encode event: user_id=%d, error=%v", userID, err)
				continue
			}
			if _, err := fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", ev.Version, eventName, data); err != nil {
				h.logger.Warn("GET /schedule/events - Client gone: user_id=%d, error=%v", userID, err)
				return
			}
			flusher.Flush()
		}
	}
}
