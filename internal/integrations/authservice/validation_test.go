package authservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       LoginRequest
		wantField string
	}{
		{name: "ok", req: LoginRequest{Email: "user@pool.ru", Password: "x"}},
		{name: "empty email", req: LoginRequest{Password: "x"}, wantField: "email"},
		{name: "no at sign", req: LoginRequest{Email: "user.pool.ru", Password: "x"}, wantField: "email"},
		{name: "no domain dot", req: LoginRequest{Email: "user@pool", Password: "x"}, wantField: "email"},
		{name: "display name form", req: LoginRequest{Email: "User <user@pool.ru>", Password: "x"}, wantField: "email"},
		{name: "empty password", req: LoginRequest{Email: "user@pool.ru"}, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{Name: "Анна", Email: "anna@pool.ru", Phone: "+7 999 000-00-00", Password: "p", ConfirmPassword: "p"}
	require.NoError(t, valid.Validate())

	noName := valid
	noName.Name = "  "
	noPhone := valid
	noPhone.Phone = ""
	mismatch := valid
	mismatch.ConfirmPassword = "q"

	for field, req := range map[string]RegisterRequest{
		"name":            noName,
		"phone":           noPhone,
		"confirmPassword": mismatch,
	} {
		var verr *ValidationError
		require.ErrorAs(t, req.Validate(), &verr, field)
		assert.Equal(t, field, verr.Field)
	}
}
