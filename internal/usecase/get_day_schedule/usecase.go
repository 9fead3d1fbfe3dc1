package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/PacificPool/internal/service/coordinator"
	"github.com/m04kA/PacificPool/internal/service/coordinator/models"
)

// UseCase use case получения расписания на день
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

// Execute загружает день через координатор пользователя.
// Если сервис недоступен, но данные уже были, отдаются прежние данные с уведомлением.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.DaySchedule, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	c := uc.coordinators.Get(req.UserID)

	date := req.Date
	if date.IsZero() {
		date = c.Today()
	}

	uc.logger.Info("GetDaySchedule: user=%d, date=%s", req.UserID, date)

	snap, err := c.LoadDay(ctx, date)
	if err != nil {
		if !snap.Loaded {
			uc.logger.Error("GetDaySchedule: user=%d, date=%s: nothing to show: %v", req.UserID, date, err)
			return nil, fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
		}
		uc.logger.Warn("GetDaySchedule: user=%d, date=%s: serving last loaded schedule: %v", req.UserID, date, err)
		day := models.FromDay(snap.Project(coordinator.DayView(date)))
		day.Stale = true
		return day, nil
	}

	day := models.FromDay(snap)
	uc.logger.Info("GetDaySchedule: user=%d, date=%s, sessions=%d", req.UserID, date, len(day.Sessions))
	return day, nil
}
