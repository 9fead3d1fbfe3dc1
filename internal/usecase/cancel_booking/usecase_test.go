package cancel_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/integrations/scheduleservice"
	"github.com/m04kA/PacificPool/internal/service/coordinator"
	"github.com/m04kA/PacificPool/pkg/logger"
	"github.com/m04kA/PacificPool/pkg/types"
)

type fakeSchedule struct {
	cancelErr   error
	cancelCalls int
}

func (f *fakeSchedule) FetchSessions(ctx context.Context, date domain.Date) ([]domain.Session, error) {
	return []domain.Session{
		{ID: 1, Date: date, Time: types.MustTimeString("08:00"), MaxCapacity: 10, AvailableSpots: 5},
	}, nil
}

func (f *fakeSchedule) FetchSessionsForRange(ctx context.Context, dates []domain.Date) ([]domain.Session, error) {
	return nil, errors.New("not used")
}

func (f *fakeSchedule) CreateBooking(ctx context.Context, userID, sessionID int64) (int64, error) {
	return 42, nil
}

func (f *fakeSchedule) CancelBooking(ctx context.Context, bookingID int64) error {
	f.cancelCalls++
	return f.cancelErr
}

func setup(t *testing.T, fake *fakeSchedule, book bool) *UseCase {
	t.Helper()
	registry := coordinator.NewRegistry(func(userID int64) *coordinator.Coordinator {
		return coordinator.New(userID, fake, fake, logger.NewNop())
	})
	c := registry.Get(1)
	_, err := c.LoadDay(context.Background(), domain.MustParseDate("2025-01-15"))
	require.NoError(t, err)
	if book {
		_, err = c.Book(context.Background(), 1)
		require.NoError(t, err)
	}
	return NewUseCase(registry, logger.NewNop())
}

func TestExecute_NoActiveBooking(t *testing.T) {
	fake := &fakeSchedule{}
	uc := setup(t, fake, false)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
	require.NoError(t, err)

	assert.False(t, resp.Cancelled)
	assert.Equal(t, 0, fake.cancelCalls)
}

func TestExecute_Cancels(t *testing.T) {
	fake := &fakeSchedule{}
	uc := setup(t, fake, true)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, &Response{Cancelled: true, BookingID: 42, SessionID: 1}, resp)
	assert.Equal(t, 1, fake.cancelCalls)
}

func TestExecute_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "rejected", err: &scheduleservice.RejectionError{StatusCode: 404, Reason: "Booking not found"}, want: ErrCancelRejected},
		{name: "network", err: scheduleservice.ErrNetwork, want: ErrCancelFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := setup(t, &fakeSchedule{cancelErr: tt.err}, true)

			_, err := uc.Execute(context.Background(), &Request{UserID: 1})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
