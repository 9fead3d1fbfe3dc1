package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

const minutesPerDay = 24 * 60

// TimeString время суток в формате "HH:MM" (всегда с ведущим нулём).
// Лексический порядок совпадает с хронологическим.
type TimeString string

// NewTimeString создает TimeString из часов и минут time.Time (в его локации)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит "H:MM", "HH:MM" или "HH:MM:SS".
// Секунды отбрасываются, результат всегда нормализован до "HH:MM".
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) > 2 || hours < 0 || hours > 23 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if len(parts) == 3 {
		// секунды допускаются (так отдаёт Postgres TIME), но не храним их
		seconds, err := strconv.Atoi(parts[2])
		if err != nil || seconds < 0 || seconds > 59 {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes)), nil
}

// MustTimeString паникует при ошибке парсинга, используется в тестах и константах
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение имеет нормализованный вид "HH:MM"
func (t TimeString) Validate() error {
	parsed, err := NewTimeStringFromString(string(t))
	if err != nil {
		return err
	}
	if parsed != t {
		return fmt.Errorf("%w: %q is not normalized", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	hours, _ := strconv.Atoi(string(t[0:2]))
	minutes, _ := strconv.Atoi(string(t[3:5]))
	return hours*60 + minutes, nil
}

// AddMinutes сдвигает время на указанное количество минут в пределах суток
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := current + delta
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d min is out of day bounds", ErrInvalidTimeString, t, delta)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore сравнивает два нормализованных значения
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON принимает любые поддерживаемые форматы и нормализует их
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer для записи в колонку TIME
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner, Postgres отдаёт TIME как "HH:MM:SS" или time.Time
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
	return nil
}
