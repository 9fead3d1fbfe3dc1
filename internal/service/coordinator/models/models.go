package models

import (
	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/service/coordinator"
	"github.com/m04kA/PacificPool/pkg/types"
)

// SessionView сеанс в том виде, в котором его рисует страница
type SessionView struct {
	ID             int64                    `json:"id"`
	Date           domain.Date              `json:"date"`
	Time           types.TimeString         `json:"time"`
	EndTime        types.TimeString         `json:"endTime,omitempty"`
	Instructor     string                   `json:"instructor"`
	Specialization string                   `json:"specialization"`
	MaxCapacity    int                      `json:"maxCapacity"`
	AvailableSpots int                      `json:"availableSpots"`
	Availability   domain.Availability      `json:"availability"`
	State          coordinator.SessionState `json:"state"`
	CanBook        bool                     `json:"canBook"`
	CanCancel      bool                     `json:"canCancel"`
}

// BookingView активное бронирование пользователя
type BookingView struct {
	BookingID int64 `json:"bookingId"`
	SessionID int64 `json:"sessionId"`
}

// NoticeView уведомление, которое можно закрыть
type NoticeView struct {
	Kind    coordinator.NoticeKind `json:"kind"`
	Message string                 `json:"message"`
}

// DaySchedule дневной список сеансов
type DaySchedule struct {
	Version       uint64        `json:"version"`
	Date          domain.Date   `json:"date"`
	Stale         bool          `json:"stale"` // последняя загрузка не удалась, показаны прежние данные
	Sessions      []SessionView `json:"sessions"`
	ActiveBooking *BookingView  `json:"activeBooking"`
	Notice        *NoticeView   `json:"notice"`
}

// WeekSchedule недельная сетка время x дата
type WeekSchedule struct {
	Version       uint64        `json:"version"`
	Start         domain.Date   `json:"start"`
	End           domain.Date   `json:"end"`
	Dates         []domain.Date `json:"dates"`
	Rows          []WeekRow     `json:"rows"`
	Stale         bool          `json:"stale"`
	ActiveBooking *BookingView  `json:"activeBooking"`
	Notice        *NoticeView   `json:"notice"`
}

// WeekRow строка сетки: одно время начала
type WeekRow struct {
	Time  types.TimeString `json:"time"`
	Cells []WeekCell       `json:"cells"`
}

// WeekCell ячейка сетки; Session nil - сеанса нет
type WeekCell struct {
	Date    domain.Date  `json:"date"`
	Session *SessionView `json:"session"`
}

// ScheduleEvent снимок для потока событий; заполнено одно из Day/Week
type ScheduleEvent struct {
	Version uint64                       `json:"version"`
	Mode    coordinator.ViewMode         `json:"mode"`
	Loaded  bool                         `json:"loaded"`
	Pending map[int64]coordinator.Action `json:"pending"`
	Notice  *NoticeView                  `json:"notice"`
	Day     *DaySchedule                 `json:"day,omitempty"`
	Week    *WeekSchedule                `json:"week,omitempty"`
}

// FromSession конвертирует сеанс с учетом состояния пользователя
func FromSession(snap coordinator.Snapshot, s domain.Session) SessionView {
	availability, err := s.Availability()
	if err != nil {
		// записи с битой вместимостью отсеиваются при загрузке
		availability = domain.AvailabilityFull
	}

	endTime, err := s.Time.AddMinutes(domain.SessionDurationMinutes)
	if err != nil {
		endTime = ""
	}

	return SessionView{
		ID:             s.ID,
		Date:           s.Date,
		Time:           s.Time,
		EndTime:        endTime,
		Instructor:     s.Instructor,
		Specialization: s.Specialization,
		MaxCapacity:    s.MaxCapacity,
		AvailableSpots: s.AvailableSpots,
		Availability:   availability,
		State:          snap.StateOf(s.ID),
		CanBook:        snap.CanBook(s.ID),
		CanCancel:      snap.CanCancel(s.ID),
	}
}

// FromBooking nil, если бронирования нет
func FromBooking(b *domain.Booking) *BookingView {
	if b == nil {
		return nil
	}
	return &BookingView{BookingID: b.ID, SessionID: b.SessionID}
}

// FromNotice nil, если уведомления нет
func FromNotice(n *coordinator.Notice) *NoticeView {
	if n == nil {
		return nil
	}
	return &NoticeView{Kind: n.Kind, Message: n.Message}
}

// FromDay дневной список, сеансы по времени; дубли слотов уже схлопнуты
func FromDay(snap coordinator.Snapshot) *DaySchedule {
	indexed := snap.Index().Sessions()

	sessions := make([]SessionView, 0, len(indexed))
	for _, s := range indexed {
		sessions = append(sessions, FromSession(snap, s))
	}

	return &DaySchedule{
		Version:       snap.Version,
		Date:          snap.View.Anchor,
		Sessions:      sessions,
		ActiveBooking: FromBooking(snap.ActiveBooking),
		Notice:        FromNotice(snap.Notice),
	}
}

// FromWeek недельная сетка; колонки - все семь дней, даже пустые
func FromWeek(snap coordinator.Snapshot) *WeekSchedule {
	grid := snap.Grid()

	rows := make([]WeekRow, 0, len(grid.Rows))
	for _, gridRow := range grid.Rows {
		row := WeekRow{Time: gridRow.Time, Cells: make([]WeekCell, 0, len(gridRow.Cells))}
		for _, cell := range gridRow.Cells {
			wc := WeekCell{Date: cell.Date}
			if cell.Session != nil {
				view := FromSession(snap, *cell.Session)
				wc.Session = &view
			}
			row.Cells = append(row.Cells, wc)
		}
		rows = append(rows, row)
	}

	week := &WeekSchedule{
		Version:       snap.Version,
		Dates:         grid.Dates,
		Rows:          rows,
		ActiveBooking: FromBooking(snap.ActiveBooking),
		Notice:        FromNotice(snap.Notice),
	}
	if len(grid.Dates) > 0 {
		week.Start = grid.Dates[0]
		week.End = grid.Dates[len(grid.Dates)-1]
	}
	return week
}

// FromSnapshot событие для подписчика по текущему представлению
func FromSnapshot(snap coordinator.Snapshot) *ScheduleEvent {
	event := &ScheduleEvent{
		Version: snap.Version,
		Mode:    snap.View.Mode,
		Loaded:  snap.Loaded,
		Pending: snap.Pending,
		Notice:  FromNotice(snap.Notice),
	}
	if !snap.Loaded {
		return event
	}
	if snap.View.Mode == coordinator.ViewWeek {
		event.Week = FromWeek(snap)
	} else {
		event.Day = FromDay(snap)
	}
	return event
}
