package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PacificPool/internal/api/handlers"
	"github.com/m04kA/PacificPool/internal/api/middleware"
	"github.com/m04kA/PacificPool/internal/service/coordinator"
	cancelBooking "github.com/m04kA/PacificPool/internal/usecase/cancel_booking"
)

const (
	msgMissingUserID = "отсутствует идентификатор пользователя"
	msgInProgress    = "отмена уже выполняется"
	msgCancelFailed  = "Не удалось отменить бронирование"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrInProgress):
			handlers.RespondConflict(w, msgInProgress)

		case errors.Is(err, cancelBooking.ErrCancelRejected):
			h.logger.Warn("DELETE /bookings/active - Rejected: user_id=%d, error=%v", userID, err)
			handlers.RespondConflict(w, reason(err))

		default:
			h.logger.Error("DELETE /bookings/active - Failed to cancel booking: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, reason(err))
		}
		return
	}

	if result.Cancelled {
		h.logger.Info("DELETE /bookings/active - Booking cancelled: booking_id=%d, user_id=%d", result.BookingID, userID)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func reason(err error) string {
	var berr *coordinator.BookingError
	if errors.As(err, &berr) && berr.Reason != "" {
		return berr.Reason
	}
	return msgCancelFailed
}
