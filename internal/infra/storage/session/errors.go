package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сеанс не найден
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrNoAvailableSpots возвращается, когда свободных мест не осталось
	ErrNoAvailableSpots = errors.New("session.repository: no available spots")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")
)
