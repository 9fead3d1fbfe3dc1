package dismiss_notice

import "github.com/m04kA/PacificPool/internal/service/coordinator"

// Coordinators координаторы пользователей (реализуется *coordinator.Registry)
type Coordinators interface {
	Get(userID int64) *coordinator.Coordinator
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
