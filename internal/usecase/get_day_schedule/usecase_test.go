package get_day_schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/service/coordinator"
	"github.com/m04kA/PacificPool/pkg/logger"
	"github.com/m04kA/PacificPool/pkg/types"
)

var errDown = errors.New("schedule is down")

type fakeSchedule struct {
	sessions []domain.Session
	err      error
}

func (f *fakeSchedule) FetchSessions(ctx context.Context, date domain.Date) ([]domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Session
	for _, s := range f.sessions {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSchedule) FetchSessionsForRange(ctx context.Context, dates []domain.Date) ([]domain.Session, error) {
	var out []domain.Session
	for _, d := range dates {
		sessions, err := f.FetchSessions(ctx, d)
		if err != nil {
			return nil, err
		}
		out = append(out, sessions...)
	}
	return out, nil
}

func (f *fakeSchedule) CreateBooking(ctx context.Context, userID, sessionID int64) (int64, error) {
	return 0, errors.New("not used")
}

func (f *fakeSchedule) CancelBooking(ctx context.Context, bookingID int64) error {
	return errors.New("not used")
}

func newUseCase(fake *fakeSchedule) *UseCase {
	registry := coordinator.NewRegistry(func(userID int64) *coordinator.Coordinator {
		return coordinator.New(userID, fake, fake, logger.NewNop())
	})
	return NewUseCase(registry, logger.NewNop())
}

func TestExecute_ReturnsSessionsSortedByTime(t *testing.T) {
	day := domain.MustParseDate("2025-01-15")
	fake := &fakeSchedule{sessions: []domain.Session{
		{ID: 2, Date: day, Time: types.MustTimeString("18:00"), MaxCapacity: 10, AvailableSpots: 10},
		{ID: 1, Date: day, Time: types.MustTimeString("07:00"), MaxCapacity: 10, AvailableSpots: 1},
		{ID: 3, Date: day.AddDays(1), Time: types.MustTimeString("07:00"), MaxCapacity: 10, AvailableSpots: 1},
	}}
	uc := newUseCase(fake)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, Date: day})
	require.NoError(t, err)

	require.Len(t, resp.Sessions, 2)
	assert.Equal(t, int64(1), resp.Sessions[0].ID)
	assert.Equal(t, domain.AvailabilityLow, resp.Sessions[0].Availability)
	assert.True(t, resp.Sessions[0].CanBook)
	assert.Equal(t, int64(2), resp.Sessions[1].ID)
	assert.False(t, resp.Stale)
}

func TestExecute_ServesLastKnownOnFailure(t *testing.T) {
	day := domain.MustParseDate("2025-01-15")
	fake := &fakeSchedule{sessions: []domain.Session{
		{ID: 1, Date: day, Time: types.MustTimeString("07:00"), MaxCapacity: 10, AvailableSpots: 4},
	}}
	uc := newUseCase(fake)

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, Date: day})
	require.NoError(t, err)

	fake.err = errDown
	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, Date: day.AddDays(1)})
	require.NoError(t, err)

	assert.True(t, resp.Stale)
	assert.Equal(t, day, resp.Date)
	require.Len(t, resp.Sessions, 1)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, coordinator.NoticeNetwork, resp.Notice.Kind)
}

func TestExecute_FirstLoadFailure(t *testing.T) {
	uc := newUseCase(&fakeSchedule{err: errDown})

	_, err := uc.Execute(context.Background(), &Request{UserID: 5, Date: domain.MustParseDate("2025-01-15")})
	assert.ErrorIs(t, err, ErrScheduleUnavailable)
}

func TestExecute_InvalidUser(t *testing.T) {
	uc := newUseCase(&fakeSchedule{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StaleDayShowsOnlyRequestedDateAfterWeekView(t *testing.T) {
	day := domain.MustParseDate("2025-01-15")
	fake := &fakeSchedule{sessions: []domain.Session{
		{ID: 1, Date: day.AddDays(-2), Time: types.MustTimeString("07:00"), MaxCapacity: 10, AvailableSpots: 4},
		{ID: 2, Date: day, Time: types.MustTimeString("08:00"), MaxCapacity: 10, AvailableSpots: 4},
	}}
	registry := coordinator.NewRegistry(func(userID int64) *coordinator.Coordinator {
		return coordinator.New(userID, fake, fake, logger.NewNop())
	})
	uc := NewUseCase(registry, logger.NewNop())

	_, err := registry.Get(5).LoadWeek(context.Background(), day)
	require.NoError(t, err)

	fake.err = errDown
	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, Date: day})
	require.NoError(t, err)

	assert.True(t, resp.Stale)
	assert.Equal(t, day, resp.Date)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, int64(2), resp.Sessions[0].ID)
}
