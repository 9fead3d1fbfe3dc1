package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/integrations/scheduleservice"
)

const (
	defaultRequestTimeout = 10 * time.Second

	resultSuccess    = "success"
	resultRejected   = "rejected"
	resultFailure    = "failure"
	resultSuperseded = "superseded"
)

// Coordinator состояние расписания и бронирования одного пользователя.
// Места в сеансах никогда не пересчитываются локально: после каждого
// бронирования или отмены расписание перезагружается с сервера.
type Coordinator struct {
	userID         int64
	sessions       SessionFetcher
	bookings       BookingClient
	metrics        Metrics
	log            Logger
	requestTimeout time.Duration
	now            func() time.Time

	mu        sync.Mutex
	state     Snapshot
	loadSeq   uint64
	subs      map[uint64]chan Snapshot
	nextSubID uint64
}

// Option настройка координатора
type Option func(*Coordinator)

// WithRequestTimeout таймаут одного запроса к сервису расписания
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.requestTimeout = d
		}
	}
}

// WithMetrics включает учет исходов бронирования и перезагрузок
func WithMetrics(m Metrics) Option {
	return func(c *Coordinator) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithClock источник текущего времени для "сегодня"
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// New создает координатор пользователя userID
func New(userID int64, sessions SessionFetcher, bookings BookingClient, log Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		userID:         userID,
		sessions:       sessions,
		bookings:       bookings,
		metrics:        noopMetrics{},
		log:            log,
		requestTimeout: defaultRequestTimeout,
		now:            time.Now,
		state:          Snapshot{Pending: map[int64]Action{}},
		subs:           make(map[uint64]chan Snapshot),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserID владелец координатора
func (c *Coordinator) UserID() int64 {
	return c.userID
}

// Snapshot текущее состояние
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// StateOf состояние сеанса в текущем снимке
func (c *Coordinator) StateOf(sessionID int64) SessionState {
	return c.Snapshot().StateOf(sessionID)
}

// Today текущая дата по часам координатора
func (c *Coordinator) Today() domain.Date {
	return domain.DateOf(c.now())
}

// LoadDay загружает расписание на день
func (c *Coordinator) LoadDay(ctx context.Context, date domain.Date) (Snapshot, error) {
	return c.load(ctx, DayView(date))
}

// LoadWeek загружает неделю (пн-вс), содержащую anchor
func (c *Coordinator) LoadWeek(ctx context.Context, anchor domain.Date) (Snapshot, error) {
	return c.load(ctx, WeekView(anchor))
}

// NextWeek неделя после текущего представления
func (c *Coordinator) NextWeek(ctx context.Context) (Snapshot, error) {
	return c.load(ctx, WeekView(domain.NextWeek(c.currentAnchor())))
}

// PreviousWeek неделя до текущего представления
func (c *Coordinator) PreviousWeek(ctx context.Context) (Snapshot, error) {
	return c.load(ctx, WeekView(domain.PreviousWeek(c.currentAnchor())))
}

// Refresh перезагружает текущее представление (сегодня, если ничего не загружено)
func (c *Coordinator) Refresh(ctx context.Context) (Snapshot, error) {
	view := c.Snapshot().View
	if view.Anchor.IsZero() {
		view = DayView(c.Today())
	}
	return c.load(ctx, view)
}

// DismissNotice закрывает уведомление
func (c *Coordinator) DismissNotice() Snapshot {
	return c.apply(noticeDismissed{})
}

func (c *Coordinator) currentAnchor() domain.Date {
	if anchor := c.Snapshot().View.Anchor; !anchor.IsZero() {
		return anchor
	}
	return c.Today()
}

// load при ошибке оставляет последние загруженные сеансы и выставляет уведомление.
// Результат загрузки, начатой раньше другой, не применяется: ErrLoadSuperseded
// вместе с текущим снимком, который относится к более новому представлению.
func (c *Coordinator) load(ctx context.Context, view View) (Snapshot, error) {
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.mu.Unlock()

	var (
		sessions []domain.Session
		err      error
	)
	if view.Mode == ViewWeek {
		sessions, err = c.sessions.FetchSessionsForRange(ctx, view.Dates())
	} else {
		sessions, err = c.sessions.FetchSessions(ctx, view.Anchor)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.log.Error("Load: user_id=%d, view=%s, anchor=%s: %v", c.userID, view.Mode, view.Anchor, err)
		if seq == c.loadSeq {
			c.dispatch(fetchFailed{message: msgFetchFailed})
		}
		return c.state, fmt.Errorf("coordinator: load %s %s: %w", view.Mode, view.Anchor, err)
	}

	if seq != c.loadSeq {
		c.log.Warn("Load: user_id=%d, view=%s, anchor=%s: superseded by a newer load", c.userID, view.Mode, view.Anchor)
		return c.state, fmt.Errorf("%w: %s %s", ErrLoadSuperseded, view.Mode, view.Anchor)
	}

	if ix := domain.GroupByTime(sessions); len(ix.Duplicates()) > 0 {
		c.log.Warn("Load: user_id=%d, anchor=%s: %d sessions share a (time, date) slot, the later one is shown",
			c.userID, view.Anchor, len(ix.Duplicates()))
	}

	c.log.Info("Load: user_id=%d, view=%s, anchor=%s, sessions=%d", c.userID, view.Mode, view.Anchor, len(sessions))
	return c.dispatch(sessionsLoaded{view: view, sessions: sessions}), nil
}

// Book бронирует сеанс. Полный сеанс, повторное нажатие и второе бронирование
// отсекаются без запроса к сервису.
func (c *Coordinator) Book(ctx context.Context, sessionID int64) (int64, error) {
	c.mu.Lock()
	s := c.state
	session, ok := s.Session(sessionID)
	switch {
	case !ok:
		c.mu.Unlock()
		return 0, fmt.Errorf("%w: session_id=%d", ErrSessionUnknown, sessionID)
	case s.Pending[sessionID] != "":
		c.mu.Unlock()
		return 0, fmt.Errorf("%w: session_id=%d", ErrActionInFlight, sessionID)
	case session.IsFull():
		c.mu.Unlock()
		return 0, fmt.Errorf("%w: session_id=%d", ErrSessionFull, sessionID)
	case s.bookingHeldOrPending():
		c.mu.Unlock()
		return 0, fmt.Errorf("%w: session_id=%d", ErrActiveBookingHeld, sessionID)
	}
	c.dispatch(actionStarted{sessionID: sessionID, action: ActionBook})
	c.mu.Unlock()

	c.log.Info("Book: user_id=%d, session_id=%d, available=%d", c.userID, sessionID, session.AvailableSpots)

	callCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	bookingID, err := c.bookings.CreateBooking(callCtx, c.userID, sessionID)
	cancel()

	var result error
	if err != nil {
		berr := newBookingError(ActionBook, sessionID, msgBookFailed, err)
		c.log.Warn("Book: user_id=%d, session_id=%d failed: %v", c.userID, sessionID, err)
		c.metrics.IncBookingAction(string(ActionBook), outcome(berr))
		c.apply(actionFailed{message: berr.Reason})
		bookingID, result = 0, berr
	} else {
		c.log.Info("Book: user_id=%d, session_id=%d, booking_id=%d", c.userID, sessionID, bookingID)
		c.metrics.IncBookingAction(string(ActionBook), resultSuccess)
		c.apply(bookingConfirmed{booking: domain.Booking{ID: bookingID, SessionID: sessionID, UserID: c.userID}})
	}

	c.settle(ctx, sessionID)
	return bookingID, result
}

// Cancel отменяет активное бронирование. Без бронирования ничего не делает.
func (c *Coordinator) Cancel(ctx context.Context) error {
	c.mu.Lock()
	active := c.state.ActiveBooking
	if active == nil {
		c.mu.Unlock()
		c.log.Warn("Cancel: user_id=%d: no active booking", c.userID)
		return nil
	}
	booking := *active
	if c.state.Pending[booking.SessionID] != "" {
		c.mu.Unlock()
		return fmt.Errorf("%w: session_id=%d", ErrActionInFlight, booking.SessionID)
	}
	c.dispatch(actionStarted{sessionID: booking.SessionID, action: ActionCancel})
	c.mu.Unlock()

	c.log.Info("Cancel: user_id=%d, booking_id=%d, session_id=%d", c.userID, booking.ID, booking.SessionID)

	callCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	err := c.bookings.CancelBooking(callCtx, booking.ID)
	cancel()

	var result error
	if err != nil {
		berr := newBookingError(ActionCancel, booking.SessionID, msgCancelFailed, err)
		c.log.Warn("Cancel: user_id=%d, booking_id=%d failed: %v", c.userID, booking.ID, err)
		c.metrics.IncBookingAction(string(ActionCancel), outcome(berr))
		c.apply(actionFailed{message: berr.Reason})
		result = berr
	} else {
		c.log.Info("Cancel: user_id=%d, booking_id=%d cancelled", c.userID, booking.ID)
		c.metrics.IncBookingAction(string(ActionCancel), resultSuccess)
		c.apply(cancelConfirmed{})
	}

	c.settle(ctx, booking.SessionID)
	return result
}

// settle ровно одна перезагрузка после ответа сервиса, затем снятие отметки.
// Перезагрузка выполняется, даже если вызывающий уже отменил ctx.
func (c *Coordinator) settle(ctx context.Context, sessionID int64) {
	refetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.requestTimeout)
	defer cancel()

	_, err := c.load(refetchCtx, c.Snapshot().View)
	switch {
	case err == nil:
		c.metrics.IncRefetch(resultSuccess)
	case errors.Is(err, ErrLoadSuperseded):
		c.metrics.IncRefetch(resultSuperseded)
	default:
		c.metrics.IncRefetch(resultFailure)
	}

	c.apply(actionSettled{sessionID: sessionID})
}

func (c *Coordinator) apply(e event) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatch(e)
}

// dispatch вызывается под c.mu
func (c *Coordinator) dispatch(e event) Snapshot {
	c.state = reduce(c.state, e)
	c.publish(c.state)
	return c.state
}

func newBookingError(op Action, sessionID int64, fallback string, err error) *BookingError {
	berr := &BookingError{Op: op, SessionID: sessionID, Reason: fallback, Err: err}

	var rejection *scheduleservice.RejectionError
	if errors.As(err, &rejection) {
		berr.Rejected = true
		if rejection.Reason != "" {
			berr.Reason = rejection.Reason
		}
	}
	return berr
}

func outcome(berr *BookingError) string {
	if berr.Rejected {
		return resultRejected
	}
	return resultFailure
}

type noopMetrics struct{}

func (noopMetrics) IncBookingAction(string, string) {}
func (noopMetrics) IncRefetch(string) {}
