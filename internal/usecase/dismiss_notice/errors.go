package dismiss_notice

import "errors"

// ErrInvalidInput возвращается при некорректных входных данных
var ErrInvalidInput = errors.New("dismiss_notice: invalid input data")
