package coordinator

import (
	"sort"

	"github.com/m04kA/PacificPool/internal/domain"
)

// ViewMode дневной список или недельная сетка
type ViewMode string

const (
	ViewDay  ViewMode = "day"
	ViewWeek ViewMode = "week"
)

// View что сейчас показывается. Для недели Anchor всегда понедельник.
type View struct {
	Mode   ViewMode
	Anchor domain.Date
}

// DayView представление одного дня
func DayView(date domain.Date) View {
	return View{Mode: ViewDay, Anchor: date}
}

// WeekView представление недели, содержащей date
func WeekView(date domain.Date) View {
	return View{Mode: ViewWeek, Anchor: domain.WeekOf(date).Start()}
}

// Dates даты, которые нужно загрузить и показать колонками
func (v View) Dates() []domain.Date {
	if v.Anchor.IsZero() {
		return nil
	}
	if v.Mode == ViewWeek {
		return domain.WeekOf(v.Anchor).Dates()
	}
	return domain.DayRange(v.Anchor)
}

// Action вид мутирующего запроса
type Action string

const (
	ActionBook   Action = "book"
	ActionCancel Action = "cancel"
)

// SessionState состояние сеанса с точки зрения пользователя
type SessionState string

const (
	StateUnknown       SessionState = "unknown"
	StateOpen          SessionState = "open"
	StatePending       SessionState = "pending"
	StateBooked        SessionState = "booked"
	StatePendingCancel SessionState = "pending_cancel"
	StateFull          SessionState = "full"
)

// NoticeKind источник уведомления
type NoticeKind string

const (
	NoticeNetwork NoticeKind = "network"
	NoticeBooking NoticeKind = "booking"
)

// Notice некритичное уведомление, закрывается пользователем
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Snapshot неизменяемое состояние координатора.
// Потребители только читают: слайсы и карты разделяются между версиями.
type Snapshot struct {
	Version       uint64
	View          View
	Loaded        bool
	Sessions      []domain.Session // по (дата, время, id)
	ActiveBooking *domain.Booking
	Pending       map[int64]Action
	Notice        *Notice
}

// Project снимок, показанный в другом представлении: View заменяется,
// остаются только сеансы с датами view. Исходный снимок не меняется.
func (s Snapshot) Project(view View) Snapshot {
	if s.View == view {
		return s
	}

	dates := make(map[domain.Date]struct{}, len(view.Dates()))
	for _, d := range view.Dates() {
		dates[d] = struct{}{}
	}

	sessions := make([]domain.Session, 0, len(s.Sessions))
	for _, session := range s.Sessions {
		if _, ok := dates[session.Date]; ok {
			sessions = append(sessions, session)
		}
	}

	s.View = view
	s.Sessions = sessions
	return s
}

// Session сеанс из загруженного расписания
func (s Snapshot) Session(id int64) (domain.Session, bool) {
	for _, session := range s.Sessions {
		if session.ID == id {
			return session, true
		}
	}
	return domain.Session{}, false
}

// StateOf состояние сеанса. Pending важнее Booked, Booked важнее Full.
func (s Snapshot) StateOf(sessionID int64) SessionState {
	switch s.Pending[sessionID] {
	case ActionBook:
		return StatePending
	case ActionCancel:
		return StatePendingCancel
	}

	if s.ActiveBooking != nil && s.ActiveBooking.SessionID == sessionID {
		return StateBooked
	}

	session, ok := s.Session(sessionID)
	if !ok {
		return StateUnknown
	}
	if session.IsFull() {
		return StateFull
	}
	return StateOpen
}

// CanBook можно ли сейчас нажать "Записаться"
func (s Snapshot) CanBook(sessionID int64) bool {
	return s.StateOf(sessionID) == StateOpen && !s.bookingHeldOrPending()
}

// CanCancel можно ли сейчас отменить активное бронирование этого сеанса
func (s Snapshot) CanCancel(sessionID int64) bool {
	return s.StateOf(sessionID) == StateBooked
}

func (s Snapshot) bookingHeldOrPending() bool {
	if s.ActiveBooking != nil {
		return true
	}
	for _, action := range s.Pending {
		if action == ActionBook {
			return true
		}
	}
	return false
}

// Index группировка сеансов по (время, дата)
func (s Snapshot) Index() *domain.SlotIndex {
	return domain.GroupByTime(s.Sessions)
}

// Grid сетка текущего представления: колонки - все даты View
func (s Snapshot) Grid() domain.Grid {
	return domain.BuildGrid(s.Index(), s.View.Dates())
}

// event переход состояния; apply не должен менять исходный Snapshot
type event interface {
	apply(s Snapshot) Snapshot
}

// reduce единственный способ получить новое состояние
func reduce(s Snapshot, e event) Snapshot {
	next := e.apply(s)
	next.Version = s.Version + 1
	return next
}

type sessionsLoaded struct {
	view     View
	sessions []domain.Session
}

func (e sessionsLoaded) apply(s Snapshot) Snapshot {
	sessions := make([]domain.Session, len(e.sessions))
	copy(sessions, e.sessions)
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if c := a.Date.Compare(b.Date); c != 0 {
			return c < 0
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.ID < b.ID
	})

	s.View = e.view
	s.Sessions = sessions
	s.Loaded = true
	// ошибка бронирования остается видимой после перезагрузки
	if s.Notice != nil && s.Notice.Kind == NoticeNetwork {
		s.Notice = nil
	}
	return s
}

// fetchFailed сеансы и View не трогаются
type fetchFailed struct {
	message string
}

func (e fetchFailed) apply(s Snapshot) Snapshot {
	s.Notice = &Notice{Kind: NoticeNetwork, Message: e.message}
	return s
}

type actionStarted struct {
	sessionID int64
	action    Action
}

func (e actionStarted) apply(s Snapshot) Snapshot {
	pending := clonePending(s.Pending)
	pending[e.sessionID] = e.action
	s.Pending = pending
	if s.Notice != nil && s.Notice.Kind == NoticeBooking {
		s.Notice = nil
	}
	return s
}

type bookingConfirmed struct {
	booking domain.Booking
}

func (e bookingConfirmed) apply(s Snapshot) Snapshot {
	booking := e.booking
	s.ActiveBooking = &booking
	return s
}

type cancelConfirmed struct{}

func (cancelConfirmed) apply(s Snapshot) Snapshot {
	s.ActiveBooking = nil
	return s
}

type actionFailed struct {
	message string
}

func (e actionFailed) apply(s Snapshot) Snapshot {
	s.Notice = &Notice{Kind: NoticeBooking, Message: e.message}
	return s
}

// actionSettled снимает отметку только после перезагрузки сеансов
type actionSettled struct {
	sessionID int64
}

func (e actionSettled) apply(s Snapshot) Snapshot {
	pending := clonePending(s.Pending)
	delete(pending, e.sessionID)
	s.Pending = pending
	return s
}

type noticeDismissed struct{}

func (noticeDismissed) apply(s Snapshot) Snapshot {
	s.Notice = nil
	return s
}

func clonePending(m map[int64]Action) map[int64]Action {
	out := make(map[int64]Action, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
