package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PacificPool/pkg/psqlbuilder"
	"github.com/m04kA/PacificPool/pkg/txmanager"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Отмененное бронирование того же сеанса снова становится активным с прежним id;
// активное не трогается, и RETURNING ничего не возвращает.
const upsertSuffix = "ON CONFLICT (user_id, session_id) DO UPDATE " +
	"SET booking_status = EXCLUDED.booking_status, updated_at = NOW() " +
	"WHERE bookings.booking_status = 'cancelled' " +
	"RETURNING id"

func createQuery(userID, sessionID int64) (string, []interface{}, error) {
	return psqlbuilder.Insert("bookings").
		Columns("user_id", "session_id", "booking_status").
		Values(userID, sessionID, StatusActive).
		Suffix(upsertSuffix).
		ToSql()
}

// Create создает активное бронирование и возвращает его id.
// Вызывать в транзакции вместе с ReserveSpot.
func (r *Repository) Create(ctx context.Context, userID, sessionID int64) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := createQuery(userID, sessionID)
	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrAlreadyExists
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return id, nil
}

func getByIDQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Select("id", "user_id", "session_id", "booking_status").
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
}

// GetByID получает бронирование по ID, блокируя строку до конца транзакции
func (r *Repository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := getByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.UserID, &b.SessionID, &b.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return &b, nil
}

func cancelQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Update("bookings").
		Set("booking_status", StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "booking_status": StatusActive}).
		ToSql()
}

// CancelActive отменяет только активное бронирование; повторная отмена - ErrNotActive
func (r *Repository) CancelActive(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := cancelQuery(id)
	if err != nil {
		return fmt.Errorf("%w: CancelActive - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CancelActive - execute update: %v", ErrExecQuery, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CancelActive - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrNotActive
	}
	return nil
}
