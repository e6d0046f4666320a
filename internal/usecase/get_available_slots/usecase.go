package get_available_slots

import (
	"context"
)

// UseCase use case для получения слотов с доступностью
type UseCase struct {
	bookingRepo BookingRepository
	catalog     SlotCatalog
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, catalog SlotCatalog, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// Execute возвращает все слоты каталога с актуальной доступностью.
// Доступность не кешируется: слот доступен, если на него нет бронирования
// со статусом, отличным от denied, на момент вызова.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Читаем текущий набор бронирований.
	// Ошибка чтения деградирует до пустого набора (все слоты доступны).
	bookings, err := uc.bookingRepo.List(ctx)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to list bookings, treating storage as empty: %v", err)
		bookings = nil
	}

	// 2. Собираем множество занятых слотов
	held := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			held[b.SlotID] = struct{}{}
		}
	}

	// 3. Аннотируем каталог доступностью
	catalogSlots := uc.catalog.Slots()
	slots := make([]Slot, len(catalogSlots))
	for i, slot := range catalogSlots {
		_, taken := held[slot.ID]
		slots[i] = Slot{
			ID:        slot.ID,
			Datetime:  slot.Datetime,
			Available: !taken,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots, %d held", len(slots), len(held))

	return &Response{Slots: slots}, nil
}
