package bookingstore

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Repository контракт хранилища бронирований.
// Реализации: файловая (канонический вариант), in-memory и PostgreSQL.
// Хранилище не знает об инварианте эксклюзивности слота: сериализацию
// последовательности read-check-write обеспечивает вызывающий слой.
type Repository interface {
	// List возвращает все бронирования (копии)
	List(ctx context.Context) ([]*domain.Booking, error)

	// Insert добавляет бронирование
	Insert(ctx context.Context, booking *domain.Booking) error

	// UpdateStatus перезаписывает статус бронирования и возвращает обновленную запись
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookingstore: booking not found")

	// ErrStorageUnavailable возвращается при ошибке чтения/записи хранилища.
	// Ошибки чтения деградируют до пустого набора на вызывающем слое и
	// наружу не отдаются; ошибки записи всегда отдаются вызывающему.
	ErrStorageUnavailable = errors.New("bookingstore: storage unavailable")
)
