package bookingpg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/bookingstore"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий бронирований поверх PostgreSQL.
// Опциональный backend: сериализация read-check-write остается на
// процессной блокировке, внешняя координация нескольких инстансов
// сознательно не поддерживается.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

const bookingColumns = "id, slot_id, datetime, customer_name, customer_email, reason, status, created_at"

// List возвращает все бронирования в порядке возрастания datetime
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"slot_id",
		"datetime",
		"customer_name",
		"customer_email",
		"reason",
		"status",
		"created_at",
	).
		From("bookings").
		OrderBy("datetime ASC, created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", bookingstore.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Insert добавляет бронирование
func (r *Repository) Insert(ctx context.Context, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"slot_id",
			"datetime",
			"customer_name",
			"customer_email",
			"reason",
			"status",
			"created_at",
		).
		Values(
			booking.ID,
			booking.SlotID,
			booking.Datetime,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.Reason,
			booking.Status,
			booking.CreatedAt,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", bookingstore.ErrStorageUnavailable, err)
	}

	return nil
}

// UpdateStatus обновляет статус бронирования и возвращает обновленную запись
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + bookingColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.SlotID,
		&booking.Datetime,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.Reason,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, bookingstore.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - scan booking: %v", ErrScanRow, err)
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.SlotID,
			&booking.Datetime,
			&booking.CustomerName,
			&booking.CustomerEmail,
			&booking.Reason,
			&booking.Status,
			&booking.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
