package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusDenied   BookingStatus = "denied"
)

// Booking represents a customer's appointment request against a time slot
type Booking struct {
	ID     string
	SlotID string

	// Datetime — снимок времени слота на момент создания бронирования.
	// Денормализовано: после создания никогда не пересчитывается по SlotID.
	Datetime time.Time

	CustomerName  string
	CustomerEmail string
	Reason        string

	Status    BookingStatus
	CreatedAt time.Time
}

// IsActive returns true if the booking holds its slot.
// Pending and approved bookings hold the slot, denied bookings release it.
func (b *Booking) IsActive() bool {
	return b.Status != StatusDenied
}

// IsPending returns true if the booking is awaiting review
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// Clone возвращает независимую копию бронирования.
// Наружу отдаются только копии, чтобы вызывающая сторона не могла
// изменить состояние хранилища в обход инварианта.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// ToBookingStatus конвертирует строку в BookingStatus
func ToBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusApproved, StatusDenied:
		return BookingStatus(s), true
	default:
		return "", false
	}
}
