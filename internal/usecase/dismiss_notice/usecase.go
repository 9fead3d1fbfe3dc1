package dismiss_notice

import (
	"fmt"

	"github.com/m04kA/PacificPool/internal/service/coordinator/models"
)

// Request запрос на скрытие уведомления
type Request struct {
	UserID int64
}

// UseCase use case скрытия уведомления об ошибке
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

// Execute скрывает текущее уведомление и возвращает новое состояние
func (uc *UseCase) Execute(req *Request) (*models.ScheduleEvent, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	snap := uc.coordinators.Get(req.UserID).DismissNotice()
	uc.logger.Info("DismissNotice: user=%d, version=%d", req.UserID, snap.Version)

	return models.FromSnapshot(snap), nil
}
