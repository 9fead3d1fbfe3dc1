package create_booking

import "github.com/m04kA/PacificPool/internal/service/coordinator"

// Coordinators координаторы пользователей (реализуется *coordinator.Registry)
type Coordinators interface {
	Get(userID int64) *coordinator.Coordinator
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
