package watch_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/service/coordinator"
	"github.com/m04kA/PacificPool/pkg/logger"
	"github.com/m04kA/PacificPool/pkg/types"
)

type fakeSchedule struct{}

func (fakeSchedule) FetchSessions(_ context.Context, date domain.Date) ([]domain.Session, error) {
	return []domain.Session{{ID: 1, Date: date, Time: types.MustTimeString("07:00"), MaxCapacity: 10, AvailableSpots: 4}}, nil
}

func (fakeSchedule) FetchSessionsForRange(context.Context, []domain.Date) ([]domain.Session, error) {
	return nil, errors.New("not used")
}

func (fakeSchedule) CreateBooking(context.Context, int64, int64) (int64, error) {
	return 0, errors.New("not used")
}

func (fakeSchedule) CancelBooking(context.Context, int64) error {
	return errors.New("not used")
}

func TestExecute_StreamsSnapshots(t *testing.T) {
	registry := coordinator.NewRegistry(func(userID int64) *coordinator.Coordinator {
		return coordinator.New(userID, fakeSchedule{}, fakeSchedule{}, logger.NewNop())
	})
	uc := NewUseCase(registry, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := uc.Execute(ctx, &Request{UserID: 9})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.False(t, ev.Loaded)
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot")
	}

	_, err = registry.Get(9).LoadDay(context.Background(), domain.MustParseDate("2025-01-15"))
	require.NoError(t, err)

	select {
	case ev := <-events:
		require.True(t, ev.Loaded)
		require.NotNil(t, ev.Day)
		assert.Len(t, ev.Day.Sessions, 1)
	case <-time.After(time.Second):
		t.Fatal("no snapshot after load")
	}

	cancel()
	assert.Eventually(t, func() bool {
		_, open := <-events
		return !open
	}, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return registry.Get(9).Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}

func TestExecute_InvalidUser(t *testing.T) {
	uc := NewUseCase(coordinator.NewRegistry(nil), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
