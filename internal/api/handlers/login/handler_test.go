package login

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
	loginUC "github.com/m04kA/PacificPool/internal/usecase/login"
	"github.com/m04kA/PacificPool/pkg/logger"
)

type fakeUseCase struct {
	resp *loginUC.Response
	err  error
	got  *loginUC.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *loginUC.Request) (*loginUC.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &loginUC.Response{User: domain.User{ID: 7, Name: "Анна", Email: "anna@pool.ru"}}}
	h := NewHandler(uc, logger.NewNop())

	w := serve(h, `{"email": "anna@pool.ru", "password": "secret"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user": {"id": 7, "name": "Анна", "email": "anna@pool.ru"}}`, w.Body.String())
	assert.Equal(t, "secret", uc.got.Password)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "field validation",
			err:    fmt.Errorf("%w: %w", loginUC.ErrInvalidInput, &authservice.ValidationError{Field: "email", Message: "Некорректный email"}),
			status: http.StatusBadRequest,
			body:   `{"error": "Некорректный email", "field": "email"}`,
		},
		{
			name:   "rejected with reason",
			err:    fmt.Errorf("%w: %w", loginUC.ErrInvalidCredentials, &authservice.RejectionError{StatusCode: 401, Reason: "Пользователь не найден"}),
			status: http.StatusUnauthorized,
			body:   `{"error": "Пользователь не найден"}`,
		},
		{
			name:   "rejected without reason",
			err:    fmt.Errorf("%w: %w", loginUC.ErrInvalidCredentials, &authservice.RejectionError{StatusCode: 401}),
			status: http.StatusUnauthorized,
			body:   `{"error": "Неверный email или пароль"}`,
		},
		{
			name:   "unavailable",
			err:    loginUC.ErrAuthUnavailable,
			status: http.StatusServiceUnavailable,
			body:   `{"error": "Сервис авторизации недоступен"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()), `{"email": "a@b.ru", "password": "x"}`)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(NewHandler(uc, logger.NewNop()), `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.got)
}
