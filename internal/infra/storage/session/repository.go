package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PacificPool/internal/domain"
	"github.com/m04kA/PacificPool/pkg/psqlbuilder"
	"github.com/m04kA/PacificPool/pkg/txmanager"
	"github.com/m04kA/PacificPool/pkg/types"
)

// Repository репозиторий сеансов бассейна
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сеансов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func listByDateQuery(date domain.Date) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"s.id",
		"s.session_date",
		"s.session_time",
		"s.max_capacity",
		"s.available_spots",
		"COALESCE(i.name, '')",
		"COALESCE(i.specialization, '')",
	).
		From("sessions s").
		LeftJoin("instructors i ON s.instructor_id = i.id").
		Where(squirrel.Eq{"s.session_date": date.String()}).
		OrderBy("s.session_time", "s.id").
		ToSql()
}

// ListByDate сеансы на дату, отсортированные по времени начала
func (r *Repository) ListByDate(ctx context.Context, date domain.Date) ([]domain.Session, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := listByDateQuery(date)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]domain.Session, 0)
	for rows.Next() {
		var (
			s           domain.Session
			sessionDate time.Time
			sessionTime types.TimeString
		)
		if err := rows.Scan(
			&s.ID,
			&sessionDate,
			&sessionTime,
			&s.MaxCapacity,
			&s.AvailableSpots,
			&s.Instructor,
			&s.Specialization,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan session: %v", ErrScanRow, err)
		}
		s.Date = domain.DateOf(sessionDate)
		s.Time = sessionTime
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - iterate rows: %v", ErrScanRow, err)
	}

	return sessions, nil
}

func lockSpotsQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Select("available_spots").
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
}

// LockAvailableSpots блокирует строку сеанса до конца транзакции и возвращает число мест
func (r *Repository) LockAvailableSpots(ctx context.Context, id int64) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := lockSpotsQuery(id)
	if err != nil {
		return 0, fmt.Errorf("%w: LockAvailableSpots - build select query: %v", ErrBuildQuery, err)
	}

	var spots int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&spots)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: LockAvailableSpots - scan: %v", ErrScanRow, err)
	}
	return spots, nil
}

func reserveSpotQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Update("sessions").
		Set("available_spots", squirrel.Expr("available_spots - 1")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"available_spots": 0}).
		ToSql()
}

// ReserveSpot занимает одно место; уменьшение условное и не уводит счетчик ниже нуля
func (r *Repository) ReserveSpot(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := reserveSpotQuery(id)
	if err != nil {
		return fmt.Errorf("%w: ReserveSpot - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReserveSpot - execute update: %v", ErrExecQuery, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReserveSpot - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrNoAvailableSpots
	}
	return nil
}

func releaseSpotQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Update("sessions").
		Set("available_spots", squirrel.Expr("available_spots + 1")).
		Where(squirrel.Eq{"id": id}).
		Where("available_spots < max_capacity").
		ToSql()
}

// ReleaseSpot возвращает место; счетчик не превышает max_capacity
func (r *Repository) ReleaseSpot(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := releaseSpotQuery(id)
	if err != nil {
		return fmt.Errorf("%w: ReleaseSpot - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReleaseSpot - execute update: %v", ErrExecQuery, err)
	}
	return nil
}
