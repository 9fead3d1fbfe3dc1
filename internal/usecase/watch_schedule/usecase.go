package watch_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PacificPool/internal/service/coordinator/models"
)

// ErrInvalidInput возвращается при некорректных входных данных
var ErrInvalidInput = errors.New("watch_schedule: invalid input data")

// Request подписка на изменения расписания пользователя
type Request struct {
	UserID int64
}

// UseCase use case потока снимков расписания
type UseCase struct {
	coordinators Coordinators
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(coordinators Coordinators, logger Logger) *UseCase {
	return &UseCase{
		coordinators: coordinators,
		logger:       logger,
	}
}

// Execute отдает текущий снимок и затем каждый новый.
// Канал закрывается после отмены ctx; медленный читатель получает только последний снимок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (<-chan *models.ScheduleEvent, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	snaps, unsubscribe := uc.coordinators.Get(req.UserID).Subscribe()
	uc.logger.Info("WatchSchedule: user=%d subscribed", req.UserID)

	out := make(chan *models.ScheduleEvent)
	go func() {
		defer close(out)
		defer unsubscribe()

		for {
			select {
			case <-ctx.Done():
				uc.logger.Info("WatchSchedule: user=%d unsubscribed", req.UserID)
				return
			case snap, ok := <-snaps:
				if !ok {
					return
				}
				select {
				case out <- models.FromSnapshot(snap):
				case <-ctx.Done():
					uc.logger.Info("WatchSchedule: user=%d unsubscribed", req.UserID)
					return
				}
			}
		}
	}()

	return out, nil
}
