package authservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/pkg/requestid"
)

const (
	metricsTarget = "auth"

	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"

	maxResponseBytes = 64 << 10
)

// Client клиент удаленного сервиса авторизации
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// Option настройка клиента
type Option func(*Client)

// WithMetrics включает учет запросов
func WithMetrics(m MetricsRecorder) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient создает новый экземпляр клиента сервиса авторизации
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login выполняет вход. Невалидная форма - ValidationError без сетевого запроса.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		c.log.Warn("Login: validation failed: %v", err)
		return nil, err
	}

	payload := loginPayload{
		Action:   actionLogin,
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	user, err := c.authenticate(ctx, actionLogin, payload)
	if err != nil {
		c.logFailure("Login", err, payload.Email)
		return nil, err
	}

	c.log.Info("Login: user_id=%d", user.ID)
	return user, nil
}

// Register регистрирует пользователя. Подтверждение пароля проверяется локально.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		c.log.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	payload := registerPayload{
		Action:   actionRegister,
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Password: req.Password,
	}

	user, err := c.authenticate(ctx, actionRegister, payload)
	if err != nil {
		c.logFailure("Register", err, payload.Email)
		return nil, err
	}

	c.log.Info("Register: user_id=%d", user.ID)
	return user, nil
}

func (c *Client) authenticate(ctx context.Context, action string, payload interface{}) (*domain.User, error) {
	started := time.Now()

	user, err := c.post(ctx, payload)
	c.observe(action, err, started)

	return user, err
}

// post 5xx и неразбираемое тело - ErrNetwork, остальное решает флаг success
func (c *Client) post(ctx context.Context, payload interface{}) (*domain.User, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, networkError("failed to encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return nil, networkError("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, networkError("failed to read response: %v", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, networkError("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var parsed authResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, invalidResponse("status %d, failed to decode response: %v", resp.StatusCode, err)
	}

	if parsed.Success == nil || !*parsed.Success {
		return nil, &RejectionError{StatusCode: resp.StatusCode, Reason: parsed.Error}
	}
	if parsed.User == nil || parsed.User.ID <= 0 {
		return nil, invalidResponse("success without user id")
	}

	user := parsed.User.toDomain()
	return &user, nil
}

func (c *Client) logFailure(op string, err error, email string) {
	if errors.Is(err, ErrRejected) {
		c.log.Warn("%s: rejected, email=%s: %v", op, email, err)
		return
	}
	c.log.Error("%s: email=%s: %v", op, email, err)
}

func (c *Client) observe(action string, err error, started time.Time) {
	if c.metrics == nil {
		return
	}
	result := resultOK
	switch {
	case errors.Is(err, ErrRejected):
		result = resultRejected
	case err != nil:
		result = resultError
	}
	c.metrics.ObserveIntegration(metricsTarget, action, result, time.Since(started))
}
