package login

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/integrations/authservice"
	"github.com/m04kA/PacificPool/pkg/logger"
)

type fakeAuth struct {
	user *domain.User
	err  error
	got  authservice.LoginRequest
}

func (f *fakeAuth) Login(_ context.Context, req authservice.LoginRequest) (*domain.User, error) {
	f.got = req
	return f.user, f.err
}

type fakeSessions struct {
	removed []int64
}

func (f *fakeSessions) Remove(userID int64) {
	f.removed = append(f.removed, userID)
}

func TestExecute_Success(t *testing.T) {
	auth := &fakeAuth{user: &domain.User{ID: 7, Name: "Анна", Email: "anna@pool.ru"}}
	sessions := &fakeSessions{}
	uc := NewUseCase(auth, sessions, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Email: "anna@pool.ru", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "anna@pool.ru", auth.got.Email)
	assert.Equal(t, []int64{7}, sessions.removed)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "validation",
			err:  &authservice.ValidationError{Field: "email", Message: "Введите email"},
			want: ErrInvalidInput,
		},
		{
			name: "rejected",
			err:  &authservice.RejectionError{StatusCode: 401, Reason: "Неверный пароль"},
			want: ErrInvalidCredentials,
		},
		{
			name: "network",
			err:  authservice.ErrNetwork,
			want: ErrAuthUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &fakeSessions{}
			uc := NewUseCase(&fakeAuth{err: tt.err}, sessions, logger.NewNop())

			_, err := uc.Execute(context.Background(), &Request{Email: "a@b.ru", Password: "x"})
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, sessions.removed)
		})
	}
}

func TestExecute_RejectionReasonReachable(t *testing.T) {
	uc := NewUseCase(&fakeAuth{err: &authservice.RejectionError{StatusCode: 401, Reason: "Неверный пароль"}},
		&fakeSessions{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Email: "a@b.ru", Password: "x"})

	var rerr *authservice.RejectionError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "Неверный пароль", rerr.Reason)
}
