package bookingmem

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/bookingstore"
)

// Repository хранилище бронирований в памяти.
// Вариант для разработки и тестов: состояние живет только в рамках процесса.
type Repository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
}

// NewRepository создает пустое in-memory хранилище
func NewRepository() *Repository {
	return &Repository{}
}

// List возвращает копии всех бронирований
func (r *Repository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, len(r.bookings))
	for i, b := range r.bookings {
		out[i] = b.Clone()
	}
	return out, nil
}

// Insert добавляет бронирование
func (r *Repository) Insert(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, booking.Clone())
	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			b.Status = status
			return b.Clone(), nil
		}
	}

	return nil, bookingstore.ErrBookingNotFound
}
