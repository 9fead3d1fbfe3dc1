package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	defer rl.Close()

	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:5002"))

	assert.Equal(t, http.StatusOK, do("10.0.0.2:5000"))
}

func TestRateLimiter_CloseTwice(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	assert.NotPanics(t, func() {
		rl.Close()
		rl.Close()
	})
}
