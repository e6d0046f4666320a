package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func sampleBookings() []*domain.Booking {
	return []*domain.Booking{
		{
			ID:            "booking_1",
			SlotID:        "slot_2026-03-10_09-00",
			Datetime:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			CustomerName:  "Alice Johnson",
			CustomerEmail: "alice@example.com",
			Reason:        "Consultation",
			Status:        domain.StatusPending,
			CreatedAt:     time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:            "booking_2",
			SlotID:        "slot_2026-03-10_14-30",
			Datetime:      time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
			CustomerName:  "Bob Smith",
			CustomerEmail: "bob@example.com",
			Reason:        "Follow-up, with comma",
			Status:        domain.StatusApproved,
			CreatedAt:     time.Date(2026, 3, 9, 13, 45, 0, 0, time.UTC),
		},
	}
}

func TestBookingsCSV(t *testing.T) {
	data, err := BookingsCSV(sampleBookings())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t,
		[]string{"Date", "Time", "Customer Name", "Email", "Reason", "Status", "Booked At"},
		records[0])
	assert.Equal(t,
		[]string{"2026-03-10", "09:00", "Alice Johnson", "alice@example.com", "Consultation", "pending", "2026-03-09 12:00"},
		records[1])
	// Запятая в поле переживает кодирование CSV
	assert.Equal(t,
		[]string{"2026-03-10", "14:30", "Bob Smith", "bob@example.com", "Follow-up, with comma", "approved", "2026-03-09 13:45"},
		records[2])
}

func TestBookingsCSV_Empty(t *testing.T) {
	data, err := BookingsCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 1, "header only")
}

func TestBookingsXLSX(t *testing.T) {
	data, err := BookingsXLSX(sampleBookings())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t,
		[]string{"Date", "Time", "Customer Name", "Email", "Reason", "Status", "Booked At"},
		rows[0])
	assert.Equal(t, "Alice Johnson", rows[1][2])
	assert.Equal(t, "approved", rows[2][5])
}
