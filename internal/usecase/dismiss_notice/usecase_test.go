package dismiss_notice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/service/coordinator"
	"github.com/m04kA/PacificPool/pkg/logger"
)

type downSchedule struct{}

func (downSchedule) FetchSessions(context.Context, domain.Date) ([]domain.Session, error) {
	return nil, errors.New("connection refused")
}

func (downSchedule) FetchSessionsForRange(context.Context, []domain.Date) ([]domain.Session, error) {
	return nil, errors.New("connection refused")
}

func (downSchedule) CreateBooking(context.Context, int64, int64) (int64, error) {
	return 0, errors.New("connection refused")
}

func (downSchedule) CancelBooking(context.Context, int64) error {
	return errors.New("connection refused")
}

func TestExecute_ClearsNotice(t *testing.T) {
	registry := coordinator.NewRegistry(func(userID int64) *coordinator.Coordinator {
		return coordinator.New(userID, downSchedule{}, downSchedule{}, logger.NewNop())
	})
	uc := NewUseCase(registry, logger.NewNop())

	_, err := registry.Get(3).LoadDay(context.Background(), domain.MustParseDate("2025-01-15"))
	require.Error(t, err)
	require.NotNil(t, registry.Get(3).Snapshot().Notice)

	event, err := uc.Execute(&Request{UserID: 3})
	require.NoError(t, err)

	assert.Nil(t, event.Notice)
	assert.False(t, event.Loaded)
	assert.Nil(t, registry.Get(3).Snapshot().Notice)
}

func TestExecute_InvalidUser(t *testing.T) {
	uc := NewUseCase(coordinator.NewRegistry(nil), logger.NewNop())

	_, err := uc.Execute(&Request{UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
