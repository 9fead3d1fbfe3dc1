package schedule_endpoint

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/PacificPool/internal/api/handlers"
	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/service/schedule"
)

// Тексты ошибок - часть протокола, клиент показывает их пользователю как есть
const (
	msgSessionIDRequired = "sessionId is required"
	msgUserIDRequired    = "userId is required"
	msgBookingIDRequired = "bookingId is required"
	msgNoAvailableSpots  = "No available spots"
	msgBookingExists     = "Booking already exists"
	msgBookingNotFound   = "Booking not found"
	msgInvalidDate       = "Invalid date"
	msgInvalidBody       = "Invalid request body"
	msgMethodNotAllowed  = "Method not allowed"
	msgInternal          = "Internal server error"

	userIDHeader = "X-User-Id"
)

type Handler struct {
	service ScheduleService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle /api/v1/schedule: GET ?date=, POST {userId, sessionId}, DELETE {bookingId}, OPTIONS
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	switch r.Method {
	case http.MethodOptions:
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-Id")
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.book(w, r)
	case http.MethodDelete:
		h.cancel(w, r)
	default:
		handlers.RespondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	date := domain.DateOf(h.now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	sessions, err := h.service.ListSessions(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /schedule - Failed to list sessions: date=%s, error=%v", date, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSessions(sessions))
}

func (h *Handler) book(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	if req.SessionID == 0 {
		handlers.RespondBadRequest(w, msgSessionIDRequired)
		return
	}
	if req.UserID == 0 {
		req.UserID, _ = strconv.ParseInt(r.Header.Get(userIDHeader), 10, 64)
	}
	if req.UserID <= 0 {
		handlers.RespondBadRequest(w, msgUserIDRequired)
		return
	}

	bookingID, err := h.service.Book(r.Context(), req.UserID, req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSessionNotFound), errors.Is(err, schedule.ErrNoAvailableSpots):
			handlers.RespondBadRequest(w, msgNoAvailableSpots)
		case errors.Is(err, schedule.ErrAlreadyBooked):
			handlers.RespondBadRequest(w, msgBookingExists)
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgSessionIDRequired)
		default:
			h.logger.Error("POST /schedule - Failed to book: user_id=%d, session_id=%d, error=%v", req.UserID, req.SessionID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BookResponse{Success: true, BookingID: bookingID})
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	if req.BookingID == 0 {
		handlers.RespondBadRequest(w, msgBookingIDRequired)
		return
	}

	if err := h.service.Cancel(r.Context(), req.BookingID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBookingNotFound), errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("DELETE /schedule - Failed to cancel: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CancelResponse{Success: true})
}
