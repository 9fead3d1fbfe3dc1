package register

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/integrations/authservice"
	registerUC "github.com/m04kA/PacificPool/internal/usecase/register"
	"github.com/m04kA/PacificPool/pkg/logger"
)

type fakeUseCase struct {
	resp *registerUC.Response
	err  error
	got  *registerUC.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *registerUC.Request) (*registerUC.Response, error) {
	f.got = req
	return f.resp, f.err
}

const form = `{"name": "Олег", "email": "oleg@pool.ru", "phone": "+7999", "password": "a", "confirmPassword": "a"}`

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &registerUC.Response{User: domain.User{ID: 11, Name: "Олег", Email: "oleg@pool.ru", Phone: "+7999"}}}

	w := serve(NewHandler(uc, logger.NewNop()), form)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"user": {"id": 11, "name": "Олег", "email": "oleg@pool.ru", "phone": "+7999"}}`, w.Body.String())
	assert.Equal(t, "a", uc.got.ConfirmPassword)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "mismatch",
			err:    fmt.Errorf("%w: %w", registerUC.ErrInvalidInput, &authservice.ValidationError{Field: "confirmPassword", Message: "Пароли не совпадают"}),
			status: http.StatusBadRequest,
			body:   `{"error": "Пароли не совпадают", "field": "confirmPassword"}`,
		},
		{
			name:   "email taken",
			err:    fmt.Errorf("%w: %w", registerUC.ErrRegistrationRejected, &authservice.RejectionError{StatusCode: 409, Reason: "Email уже зарегистрирован"}),
			status: http.StatusConflict,
			body:   `{"error": "Email уже зарегистрирован"}`,
		},
		{
			name:   "unavailable",
			err:    registerUC.ErrAuthUnavailable,
			status: http.StatusServiceUnavailable,
			body:   `{"error": "Сервис авторизации недоступен"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()), form)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
