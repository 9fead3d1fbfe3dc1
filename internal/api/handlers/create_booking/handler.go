package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PacificPool/internal/api/handlers"
	"github.com/m04kA/PacificPool/internal/api/middleware"
	"github.com/m04kA/PacificPool/internal/service/coordinator"
	createBooking "github.com/m04kA/PacificPool/internal/usecase/create_booking"
)

const (
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSessionID   = "некорректный идентификатор сеанса"
	msgSessionNotFound    = "сеанс не найден в текущем расписании"
	msgSessionFull        = "мест нет"
	msgInProgress         = "бронирование уже выполняется"
	msgAlreadyBooked      = "у вас уже есть активное бронирование"
	msgBookFailed         = "Не удалось забронировать сеанс"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{UserID: userID, SessionID: req.SessionID})
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSessionID)

		case errors.Is(err, createBooking.ErrSessionNotFound):
			h.logger.Warn("POST /bookings - Session not found: user_id=%d, session_id=%d", userID, req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createBooking.ErrSessionFull):
			handlers.RespondConflict(w, msgSessionFull)

		case errors.Is(err, createBooking.ErrInProgress):
			handlers.RespondConflict(w, msgInProgress)

		case errors.Is(err, createBooking.ErrAlreadyBooked):
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, createBooking.ErrBookingRejected):
			// причина отказа сервиса показывается как есть
			h.logger.Warn("POST /bookings - Rejected: user_id=%d, session_id=%d, error=%v", userID, req.SessionID, err)
			handlers.RespondConflict(w, reason(err))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, session_id=%d, error=%v",
				userID, req.SessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, reason(err))
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, session_id=%d",
		result.BookingID, userID, req.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func reason(err error) string {
	var berr *coordinator.BookingError
	if errors.As(err, &berr) && berr.Reason != "" {
		return berr.Reason
	}
	return msgBookFailed
}
