package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/bookingmem"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T) (*UseCase, *bookingmem.Repository) {
	t.Helper()

	reference := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slotCatalog := catalog.New(reference, catalog.DefaultPolicy())
	repo := bookingmem.NewRepository()

	return NewUseCase(repo, slotCatalog, nopLogger{}), repo
}

func insertBooking(t *testing.T, repo *bookingmem.Repository, slotID string, status domain.BookingStatus) {
	t.Helper()

	err := repo.Insert(context.Background(), &domain.Booking{
		ID:            "booking_" + slotID,
		SlotID:        slotID,
		Datetime:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		CustomerName:  "Alice Johnson",
		CustomerEmail: "alice@example.com",
		Reason:        "Consultation",
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestExecute_AllSlotsAvailableWhenEmpty(t *testing.T) {
	uc, _ := newTestUseCase(t)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 112)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s must be available", slot.ID)
	}
}

func TestExecute_ActiveBookingsHoldSlots(t *testing.T) {
	uc, repo := newTestUseCase(t)

	insertBooking(t, repo, "slot_2026-03-10_09-00", domain.StatusPending)
	insertBooking(t, repo, "slot_2026-03-10_09-30", domain.StatusApproved)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	availability := make(map[string]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		availability[slot.ID] = slot.Available
	}

	assert.False(t, availability["slot_2026-03-10_09-00"], "pending booking holds the slot")
	assert.False(t, availability["slot_2026-03-10_09-30"], "approved booking holds the slot")
	assert.True(t, availability["slot_2026-03-10_10-00"])
}

func TestExecute_DeniedBookingFreesSlot(t *testing.T) {
	uc, repo := newTestUseCase(t)

	insertBooking(t, repo, "slot_2026-03-10_09-00", domain.StatusDenied)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		if slot.ID == "slot_2026-03-10_09-00" {
			assert.True(t, slot.Available, "denied booking must not hold the slot")
			return
		}
	}
	t.Fatal("slot not found in response")
}

func TestExecute_PreservesCatalogOrder(t *testing.T) {
	uc, _ := newTestUseCase(t)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].Datetime.Before(resp.Slots[i].Datetime))
	}
}

func TestExecute_StorageReadFailureDegradesToEmpty(t *testing.T) {
	reference := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slotCatalog := catalog.New(reference, catalog.DefaultPolicy())

	uc := NewUseCase(failingRepo{}, slotCatalog, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err, "unreadable storage is treated as empty")

	require.Len(t, resp.Slots, 112)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]*domain.Booking, error) {
	return nil, errors.New("storage exploded")
}
