package bookingmem

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// SlotSource источник слотов для сидирования
type SlotSource interface {
	Slots() []domain.Slot
}

// SeedSampleData заполняет хранилище демонстрационными бронированиями
// по первым слотам каталога: одно в ожидании, одно подтвержденное.
// Используется только для in-memory варианта при включенном флаге конфига.
func (r *Repository) SeedSampleData(ctx context.Context, slots SlotSource, now time.Time) error {
	catalog := slots.Slots()
	if len(catalog) < 2 {
		return nil
	}

	samples := []*domain.Booking{
		{
			ID:            fmt.Sprintf("booking_%s", uuid.NewString()),
			SlotID:        catalog[0].ID,
			Datetime:      catalog[0].Datetime,
			CustomerName:  "Alice Johnson",
			CustomerEmail: "alice.johnson@example.com",
			Reason:        "Initial consultation",
			Status:        domain.StatusPending,
			CreatedAt:     now.UTC(),
		},
		{
			ID:            fmt.Sprintf("booking_%s", uuid.NewString()),
			SlotID:        catalog[1].ID,
			Datetime:      catalog[1].Datetime,
			CustomerName:  "Bob Smith",
			CustomerEmail: "bob.smith@example.com",
			Reason:        "Follow-up appointment",
			Status:        domain.StatusApproved,
			CreatedAt:     now.UTC(),
		},
	}

	for _, sample := range samples {
		if err := r.Insert(ctx, sample); err != nil {
			return err
		}
	}

	return nil
}
