package bookingfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/bookingstore"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "storage", "bookings.json")
	return NewRepository(path, nopLogger{}), path
}

func sampleBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		SlotID:        "slot_2026-03-10_09-00",
		Datetime:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		CustomerName:  "Alice Johnson",
		CustomerEmail: "alice@example.com",
		Reason:        "Consultation",
		Status:        domain.StatusPending,
		CreatedAt:     time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	}
}

func TestList_MissingFile(t *testing.T) {
	repo, _ := newTestRepository(t)

	bookings, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestList_CorruptFile(t *testing.T) {
	repo, path := newTestRepository(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	bookings, err := repo.List(context.Background())
	require.NoError(t, err, "unreadable file degrades to empty set")
	assert.Empty(t, bookings)
}

func TestInsert_Roundtrip(t *testing.T) {
	repo, _ := newTestRepository(t)

	original := sampleBooking("booking_1")
	require.NoError(t, repo.Insert(context.Background(), original))

	bookings, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, bookings, 1)
	assert.Equal(t, original, bookings[0])
}

func TestInsert_CreatesStorageDirectory(t *testing.T) {
	repo, path := newTestRepository(t)

	require.NoError(t, repo.Insert(context.Background(), sampleBooking("booking_1")))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestInsert_FileLayout(t *testing.T) {
	repo, path := newTestRepository(t)

	require.NoError(t, repo.Insert(context.Background(), sampleBooking("booking_1")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal(data, &records))

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "booking_1", rec["id"])
	assert.Equal(t, "slot_2026-03-10_09-00", rec["slotId"])
	assert.Equal(t, "2026-03-10T09:00:00Z", rec["datetime"])
	assert.Equal(t, "Alice Johnson", rec["customerName"])
	assert.Equal(t, "alice@example.com", rec["customerEmail"])
	assert.Equal(t, "Consultation", rec["reason"])
	assert.Equal(t, "pending", rec["status"])
	assert.Equal(t, "2026-03-09T12:00:00Z", rec["createdAt"])

	// Документ переписывается с отступами
	assert.Contains(t, string(data), "\n  ")
}

func TestUpdateStatus(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Insert(context.Background(), sampleBooking("booking_1")))
	require.NoError(t, repo.Insert(context.Background(), sampleBooking("booking_2")))

	updated, err := repo.UpdateStatus(context.Background(), "booking_2", domain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)
	assert.Equal(t, "Alice Johnson", updated.CustomerName)

	// Изменение переживает перечитывание файла
	bookings, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, domain.StatusPending, bookings[0].Status)
	assert.Equal(t, domain.StatusApproved, bookings[1].Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.UpdateStatus(context.Background(), "booking_missing", domain.StatusApproved)
	assert.ErrorIs(t, err, bookingstore.ErrBookingNotFound)
}

func TestList_SkipsMalformedRecords(t *testing.T) {
	repo, path := newTestRepository(t)

	require.NoError(t, repo.Insert(context.Background(), sampleBooking("booking_good")))

	// Дописываем запись с неразборчивой датой
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []bookingRecord
	require.NoError(t, json.Unmarshal(data, &records))
	records = append(records, bookingRecord{
		ID:       "booking_bad",
		SlotID:   "slot_2026-03-10_09-30",
		Datetime: "not-a-date",
		Status:   "pending",
	})
	data, err = json.Marshal(records)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	bookings, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "booking_good", bookings[0].ID)
}
