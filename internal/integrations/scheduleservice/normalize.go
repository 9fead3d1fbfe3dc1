package scheduleservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/pkg/types"
)

// normalizeSession приводит DTO к domain.Session и проверяет инварианты вместимости.
// fallbackDate подставляется, если сервис не прислал дату.
func normalizeSession(dto sessionDTO, fallbackDate domain.Date) (domain.Session, error) {
	date, err := normalizeDate(dto.Date, fallbackDate)
	if err != nil {
		return domain.Session{}, err
	}

	startTime, err := types.NewTimeStringFromString(dto.Time)
	if err != nil {
		return domain.Session{}, fmt.Errorf("session %d: %w", dto.ID, err)
	}

	session := domain.Session{
		ID:             dto.ID.Int64(),
		Date:           date,
		Time:           startTime,
		Instructor:     deref(dto.Instructor),
		Specialization: deref(dto.Specialization),
		MaxCapacity:    dto.MaxCapacity,
		AvailableSpots: dto.AvailableSpots,
	}

	if err := session.Validate(); err != nil {
		return domain.Session{}, err
	}

	return session, nil
}

func normalizeDate(raw string, fallback domain.Date) (domain.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	if d, err := domain.ParseDate(raw); err == nil {
		return d, nil
	}

	// некоторые сервисы отдают дату как полноценный timestamp
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return domain.DateOf(ts), nil
	}

	return domain.Date{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, raw)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
