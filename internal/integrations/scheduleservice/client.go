package scheduleservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/pkg/requestid"
)

const (
	metricsTarget = "schedule"

	opFetchSessions = "fetch_sessions"
	opCreateBooking = "create_booking"
	opCancelBooking = "cancel_booking"

	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"

	defaultConcurrency = 4

	// ограничение на размер тела ответа, расписание на день намного меньше
	maxResponseBytes = 1 << 20
)

// Client клиент сервиса расписания бассейна
type Client struct {
	baseURL     string
	httpClient  *http.Client
	concurrency int
	metrics     MetricsRecorder
	log         Logger
}

// Option настройка клиента
type Option func(*Client)

// WithConcurrency сколько дат загружать параллельно в FetchSessionsForRange
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithMetrics включает учет запросов
func WithMetrics(m MetricsRecorder) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithHTTPClient подменяет http.Client (транспорт/таймауты)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создает новый экземпляр клиента сервиса расписания
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		concurrency: defaultConcurrency,
		log:         log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchSessions получает сеансы на дату. Пустой список - валидный ответ.
func (c *Client) FetchSessions(ctx context.Context, date domain.Date) ([]domain.Session, error) {
	started := time.Now()

	sessions, err := c.fetchSessions(ctx, date)
	c.observe(opFetchSessions, err, started)
	if err != nil {
		c.log.Error("FetchSessions: date=%s: %v", date, err)
		return nil, err
	}

	c.log.Info("FetchSessions: date=%s, sessions=%d", date, len(sessions))
	return sessions, nil
}

// FetchSessionsForRange загружает каждую дату отдельным запросом и склеивает результат.
// Порядок между датами не гарантируется, группировка пересортирует.
// Ошибка любой даты - ошибка всего диапазона.
func (c *Client) FetchSessionsForRange(ctx context.Context, dates []domain.Date) ([]domain.Session, error) {
	results := make([][]domain.Session, len(dates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			sessions, err := c.FetchSessions(gctx, date)
			if err != nil {
				return err
			}
			results[i] = sessions
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]domain.Session, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}

	return all, nil
}

func (c *Client) fetchSessions(ctx context.Context, date domain.Date) ([]domain.Session, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, networkError("invalid base url %q: %v", c.baseURL, err)
	}
	query := endpoint.Query()
	query.Set("date", date.String())
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, networkError("failed to create request: %v", err)
	}
	c.setHeaders(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, networkError("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, networkError("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var parsed sessionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, invalidResponse("failed to decode sessions: %v", err)
	}

	sessions := make([]domain.Session, 0, len(parsed.Sessions))
	for _, dto := range parsed.Sessions {
		session, err := normalizeSession(dto, date)
		if err != nil {
			// битая запись пропускается, остальные показываются
			c.log.Warn("FetchSessions: date=%s, dropping malformed session id=%d: %v", date, dto.ID, err)
			continue
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// CreateBooking создает бронирование. Успех - только success=true с bookingId.
func (c *Client) CreateBooking(ctx context.Context, userID, sessionID int64) (int64, error) {
	started := time.Now()
	c.log.Info("CreateBooking: user=%d, session=%d", userID, sessionID)

	var parsed createBookingResponse
	status, err := c.send(ctx, http.MethodPost, createBookingRequest{UserID: userID, SessionID: sessionID}, &parsed)
	if err == nil {
		switch {
		case parsed.Success == nil || !*parsed.Success:
			err = &RejectionError{StatusCode: status, Reason: parsed.Error}
		case parsed.BookingID <= 0:
			err = invalidResponse("success without bookingId")
		}
	}

	c.observe(opCreateBooking, err, started)
	if err != nil {
		c.logFailure("CreateBooking", err, "user=%d, session=%d", userID, sessionID)
		return 0, err
	}

	c.log.Info("CreateBooking: created booking id=%d for user=%d, session=%d", parsed.BookingID, userID, sessionID)
	return parsed.BookingID.Int64(), nil
}

// CancelBooking отменяет бронирование
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) error {
	started := time.Now()
	c.log.Info("CancelBooking: booking=%d", bookingID)

	var parsed cancelBookingResponse
	status, err := c.send(ctx, http.MethodDelete, cancelBookingRequest{BookingID: bookingID}, &parsed)
	if err == nil && (parsed.Success == nil || !*parsed.Success) {
		err = &RejectionError{StatusCode: status, Reason: parsed.Error}
	}

	c.observe(opCancelBooking, err, started)
	if err != nil {
		c.logFailure("CancelBooking", err, "booking=%d", bookingID)
		return err
	}

	c.log.Info("CancelBooking: cancelled booking id=%d", bookingID)
	return nil
}

// send отправляет JSON и разбирает JSON ответ.
// 5xx и неразбираемое тело - ErrNetwork; 2xx/4xx с телом - решает вызывающий по success.
func (c *Client) send(ctx context.Context, method string, payload interface{}, out interface{}) (int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, networkError("failed to encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return 0, networkError("failed to create request: %v", err)
	}
	c.setHeaders(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, networkError("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, networkError("failed to read response: %v", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, networkError("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, invalidResponse("status %d, failed to decode response: %v", resp.StatusCode, err)
	}

	return resp.StatusCode, nil
}

func (c *Client) setHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}
}

func (c *Client) logFailure(op string, err error, format string, v ...interface{}) {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		c.log.Warn(op+": rejected, "+format+": %v", append(v, err)...)
		return
	}
	c.log.Error(op+": "+format+": %v", append(v, err)...)
}

func (c *Client) observe(op string, err error, started time.Time) {
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
	c.metrics.ObserveIntegration(metricsTarget, op, result, time.Since(started))
}
