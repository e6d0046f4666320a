package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	Insert(ctx context.Context, booking *domain.Booking) error
}

// SlotCatalog интерфейс каталога слотов
type SlotCatalog interface {
	Resolve(id string) (domain.Slot, bool)
}

// LockManager интерфейс точки сериализации мутаций.
// Последовательность read-check-write внутри Execute должна быть
// атомарной относительно конкурирующих вызовов.
type LockManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс имитации уведомлений
type Notifier interface {
	CalendarInvite(booking *domain.Booking)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
