package scheduleservice

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учет исходящих запросов (реализуется *metrics.Metrics)
type MetricsRecorder interface {
	ObserveIntegration(target, operation, result string, d time.Duration)
}
