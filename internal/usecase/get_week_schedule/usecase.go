package get_week_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/internal/service/coordinator"
	"github.com/m04kA/PacificPool/internal/service/coordinator/models"
)

// UseCase use case получения недельной сетки сеансов
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

// Execute загружает неделю (пн-вс) и строит сетку время x дата
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.WeekSchedule, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekSchedule: validation failed: %v", err)
		return nil, err
	}

	c := uc.coordinators.Get(req.UserID)
	target := coordinator.WeekView(resolveAnchor(c, req))

	var (
		snap coordinator.Snapshot
		err  error
	)
	switch {
	case req.Date.IsZero() && req.Shift > 0:
		uc.logger.Info("GetWeekSchedule: user=%d, next week", req.UserID)
		snap, err = c.NextWeek(ctx)
	case req.Date.IsZero() && req.Shift < 0:
		uc.logger.Info("GetWeekSchedule: user=%d, previous week", req.UserID)
		snap, err = c.PreviousWeek(ctx)
	default:
		anchor := resolveAnchor(c, req)
		uc.logger.Info("GetWeekSchedule: user=%d, anchor=%s, shift=%d", req.UserID, anchor, req.Shift)
		snap, err = c.LoadWeek(ctx, anchor)
	}

	if err != nil {
		if !snap.Loaded {
			uc.logger.Error("GetWeekSchedule: user=%d: nothing to show: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
		}
		// прежние данные показываются в запрошенной неделе: всегда семь колонок
		uc.logger.Warn("GetWeekSchedule: user=%d, week=%s: serving last loaded schedule: %v", req.UserID, target.Anchor, err)
		week := models.FromWeek(snap.Project(target))
		week.Stale = true
		return week, nil
	}

	week := models.FromWeek(snap)
	uc.logger.Info("GetWeekSchedule: user=%d, week=%s..%s, rows=%d", req.UserID, week.Start, week.End, len(week.Rows))
	return week, nil
}

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Shift < -1 || req.Shift > 1 {
		return fmt.Errorf("%w: shift must be -1, 0 or 1", ErrInvalidInput)
	}
	return nil
}

// resolveAnchor явная дата со сдвигом, иначе текущая неделя представления
func resolveAnchor(c *coordinator.Coordinator, req *Request) domain.Date {
	anchor := req.Date
	if anchor.IsZero() {
		anchor = c.Snapshot().View.Anchor
	}
	if anchor.IsZero() {
		anchor = c.Today()
	}

	switch {
	case req.Shift > 0:
		return domain.NextWeek(anchor)
	case req.Shift < 0:
		return domain.PreviousWeek(anchor)
	default:
		return anchor
	}
}
