package get_slots

import (
	"time"

	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота с доступностью
type SlotResponse struct {
	ID        string `json:"id"`
	Datetime  string `json:"datetime"` // ISO-8601
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) []SlotResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			ID:        slot.ID,
			Datetime:  slot.Datetime.UTC().Format(time.RFC3339),
			Available: slot.Available,
		}
	}
	return slots
}
