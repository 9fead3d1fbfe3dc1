package create_booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PacificPool/internal/api/middleware"
	"github.com/m04kA/PacificPool/internal/service/coordinator"
	createBooking "github.com/m04kA/PacificPool/internal/usecase/create_booking"
	"github.com/m04kA/PacificPool/pkg/logger"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(h *Handler, userID int64, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID > 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{BookingID: 42, SessionID: 3}}
	h := NewHandler(uc, logger.NewNop())

	w := serve(h, 7, `{"sessionId": 3}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"bookingId": 42, "sessionId": 3, "session": null}`, w.Body.String())
	assert.Equal(t, &createBooking.Request{UserID: 7, SessionID: 3}, uc.got)
}

func TestHandle_Errors(t *testing.T) {
	rejected := &coordinator.BookingError{
		Op: coordinator.ActionBook, SessionID: 3, Reason: "No available spots", Rejected: true,
		Err: errors.New("status 400"),
	}
	network := &coordinator.BookingError{
		Op: coordinator.ActionBook, SessionID: 3, Reason: "Не удалось забронировать сеанс",
		Err: errors.New("connection refused"),
	}

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "invalid", err: createBooking.ErrInvalidInput, status: http.StatusBadRequest, message: msgInvalidSessionID},
		{name: "unknown", err: createBooking.ErrSessionNotFound, status: http.StatusNotFound, message: msgSessionNotFound},
		{name: "full", err: createBooking.ErrSessionFull, status: http.StatusConflict, message: msgSessionFull},
		{name: "in flight", err: createBooking.ErrInProgress, status: http.StatusConflict, message: msgInProgress},
		{name: "held", err: createBooking.ErrAlreadyBooked, status: http.StatusConflict, message: msgAlreadyBooked},
		{
			name:    "rejected keeps reason",
			err:     fmt.Errorf("%w: %w", createBooking.ErrBookingRejected, rejected),
			status:  http.StatusConflict,
			message: "No available spots",
		},
		{
			name:    "network",
			err:     fmt.Errorf("%w: %w", createBooking.ErrBookingFailed, network),
			status:  http.StatusBadGateway,
			message: "Не удалось забронировать сеанс",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())

			w := serve(h, 7, `{"sessionId": 3}`)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error": %q}`, tt.message), w.Body.String())
		})
	}
}

func TestHandle_BadInput(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	assert.Equal(t, http.StatusUnauthorized, serve(h, 0, `{"sessionId": 3}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, 7, `{"sessionId":`).Code)
	assert.Nil(t, uc.got)
}
