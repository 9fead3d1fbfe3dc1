package coordinator

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/integrations/scheduleservice"
	"github.com/m04kA/PacificPool/pkg/types"
)

// fakeSchedule сервис расписания в памяти: места считает "сервер"
type fakeSchedule struct {
	mu       sync.Mutex
	sessions []domain.Session
	bookings map[int64]int64 // booking id -> session id
	nextID   int64
	fetchErr error
	calls    []string

	onFetch  func(date domain.Date)
	onCreate func(ctx context.Context, sessionID int64) (int64, error)
	onCancel func(ctx context.Context, bookingID int64) error
}

func newFakeSchedule(sessions ...domain.Session) *fakeSchedule {
	return &fakeSchedule{
		sessions: sessions,
		bookings: make(map[int64]int64),
		nextID:   41,
	}
}

func session(id int64, date, at string, available, total int) domain.Session {
	return domain.Session{
		ID:             id,
		Date:           domain.MustParseDate(date),
		Time:           types.MustTimeString(at),
		Instructor:     "Петрова А.",
		Specialization: "Плавание",
		MaxCapacity:    total,
		AvailableSpots: available,
	}
}

func (f *fakeSchedule) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeSchedule) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeSchedule) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeSchedule) resetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *fakeSchedule) setFetchErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchErr = err
}

func (f *fakeSchedule) FetchSessions(ctx context.Context, date domain.Date) ([]domain.Session, error) {
	f.record("fetch")
	if f.onFetch != nil {
		f.onFetch(date)
	}
	return f.filter(map[domain.Date]bool{date: true})
}

func (f *fakeSchedule) FetchSessionsForRange(ctx context.Context, dates []domain.Date) ([]domain.Session, error) {
	f.record("fetch_range")
	set := make(map[domain.Date]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return f.filter(set)
}

func (f *fakeSchedule) filter(dates map[domain.Date]bool) ([]domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var out []domain.Session
	for _, s := range f.sessions {
		if dates[s.Date] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSchedule) CreateBooking(ctx context.Context, userID, sessionID int64) (int64, error) {
	f.record("create")
	if f.onCreate != nil {
		return f.onCreate(ctx, sessionID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.sessions {
		if f.sessions[i].ID != sessionID {
			continue
		}
		if f.sessions[i].AvailableSpots <= 0 {
			return 0, &scheduleservice.RejectionError{StatusCode: 400, Reason: "No available spots"}
		}
		f.sessions[i].AvailableSpots--
		f.nextID++
		f.bookings[f.nextID] = sessionID
		return f.nextID, nil
	}
	return 0, &scheduleservice.RejectionError{StatusCode: 400, Reason: "No available spots"}
}

func (f *fakeSchedule) CancelBooking(ctx context.Context, bookingID int64) error {
	f.record("cancel")
	if f.onCancel != nil {
		return f.onCancel(ctx, bookingID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	sessionID, ok := f.bookings[bookingID]
	if !ok {
		return &scheduleservice.RejectionError{StatusCode: 404, Reason: "Booking not found"}
	}
	delete(f.bookings, bookingID)
	for i := range f.sessions {
		if f.sessions[i].ID == sessionID {
			f.sessions[i].AvailableSpots++
		}
	}
	return nil
}

func networkErr(msg string) error {
	return fmt.Errorf("%w: %s", scheduleservice.ErrNetwork, msg)
}
