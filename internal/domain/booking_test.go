package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotID_Format(t *testing.T) {
	ts := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "slot_2026-03-10_09-30", SlotID(ts))
}

func TestSlotID_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2026, 3, 10, 12, 30, 0, 0, loc)

	assert.Equal(t, "slot_2026-03-10_09-30", SlotID(ts))
}

func TestNewSlot_TruncatesSeconds(t *testing.T) {
	ts := time.Date(2026, 3, 10, 9, 30, 45, 123, time.UTC)

	slot := NewSlot(ts)

	assert.Equal(t, "slot_2026-03-10_09-30", slot.ID)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC), slot.Datetime)
}

func TestBooking_IsActive(t *testing.T) {
	booking := &Booking{Status: StatusPending}
	assert.True(t, booking.IsActive(), "pending booking holds its slot")

	booking.Status = StatusApproved
	assert.True(t, booking.IsActive(), "approved booking holds its slot")

	booking.Status = StatusDenied
	assert.False(t, booking.IsActive(), "denied booking frees its slot")
}

func TestToBookingStatus(t *testing.T) {
	status, ok := ToBookingStatus("approved")
	require.True(t, ok)
	assert.Equal(t, StatusApproved, status)

	status, ok = ToBookingStatus("denied")
	require.True(t, ok)
	assert.Equal(t, StatusDenied, status)

	status, ok = ToBookingStatus("pending")
	require.True(t, ok)
	assert.Equal(t, StatusPending, status)

	_, ok = ToBookingStatus("cancelled")
	assert.False(t, ok)

	_, ok = ToBookingStatus("")
	assert.False(t, ok)
}

func TestBooking_Clone(t *testing.T) {
	original := &Booking{
		ID:            "booking_1",
		SlotID:        "slot_2026-03-10_09-00",
		Datetime:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		CustomerName:  "Alice Johnson",
		CustomerEmail: "alice@example.com",
		Reason:        "Consultation",
		Status:        StatusPending,
		CreatedAt:     time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Status = StatusDenied
	assert.Equal(t, StatusPending, original.Status)
}
