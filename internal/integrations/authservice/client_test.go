package authservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/pkg/logger"
)

type fakeAuthServer struct {
	calls  atomic.Int32
	last   map[string]interface{}
	status int
	body   string
}

func (f *fakeAuthServer) start(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		f.last = map[string]interface{}{}
		_ = json.NewDecoder(r.Body).Decode(&f.last)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, logger.NewNop())
}

func TestLogin_Success(t *testing.T) {
	fake := &fakeAuthServer{status: http.StatusOK, body: `{"success": true, "user": {"id": "17", "name": "Анна", "email": "anna@example.com", "phone": "+79990000000"}}`}
	client := fake.start(t)

	user, err := client.Login(context.Background(), LoginRequest{Email: " anna@example.com ", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, &domain.User{ID: 17, Name: "Анна", Email: "anna@example.com", Phone: "+79990000000"}, user)
	assert.Equal(t, "login", fake.last["action"])
	assert.Equal(t, "anna@example.com", fake.last["email"])
	assert.Equal(t, "secret", fake.last["password"])
}

func TestRegister_DoesNotSendConfirmation(t *testing.T) {
	fake := &fakeAuthServer{status: http.StatusOK, body: `{"success": true, "user": {"id": 3, "name": "Иван"}}`}
	client := fake.start(t)

	user, err := client.Register(context.Background(), RegisterRequest{
		Name:            "Иван",
		Email:           "ivan@example.com",
		Phone:           "+79990000001",
		Password:        "pa55",
		ConfirmPassword: "pa55",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "register", fake.last["action"])
	assert.NotContains(t, fake.last, "confirmPassword")
}

func TestRegister_PasswordMismatchBlocksRequest(t *testing.T) {
	fake := &fakeAuthServer{status: http.StatusOK, body: `{"success": true, "user": {"id": 3}}`}
	client := fake.start(t)

	_, err := client.Register(context.Background(), RegisterRequest{
		Name:            "Иван",
		Email:           "ivan@example.com",
		Phone:           "+79990000001",
		Password:        "one",
		ConfirmPassword: "two",
	})

	require.ErrorIs(t, err, ErrValidation)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "confirmPassword", verr.Field)
	assert.Equal(t, "Пароли не совпадают", verr.Message)
	assert.Equal(t, int32(0), fake.calls.Load())
}

func TestLogin_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantReason string
	}{
		{name: "wrong password", status: http.StatusUnauthorized, body: `{"success": false, "error": "Неверный email или пароль"}`, wantReason: "Неверный email или пароль"},
		{name: "no flag", status: http.StatusOK, body: `{}`, wantReason: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthServer{status: tt.status, body: tt.body}
			client := fake.start(t)

			_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.ru", Password: "x"})
			var rejection *RejectionError
			require.ErrorAs(t, err, &rejection)
			assert.Equal(t, tt.wantReason, rejection.Reason)
			assert.NotErrorIs(t, err, ErrNetwork)
		})
	}
}

func TestLogin_NetworkFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusBadGateway, body: `bad gateway`},
		{name: "not json", status: http.StatusOK, body: `<html></html>`},
		{name: "success without user", status: http.StatusOK, body: `{"success": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthServer{status: tt.status, body: tt.body}
			client := fake.start(t)

			_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.ru", Password: "x"})
			assert.ErrorIs(t, err, ErrNetwork)
		})
	}
}
