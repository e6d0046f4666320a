package domain

import (
	"fmt"
	"time"
)

// Slot represents a bookable time interval, identified deterministically
// by its timestamp. Slots are generated, never persisted.
type Slot struct {
	ID       string
	Datetime time.Time
}

// NewSlot создает слот для указанного момента времени.
// Идентификатор детерминирован: два вызова для одного и того же
// момента всегда дают одинаковый ID.
func NewSlot(t time.Time) Slot {
	t = t.UTC().Truncate(time.Minute)
	return Slot{
		ID:       SlotID(t),
		Datetime: t,
	}
}

// SlotID возвращает детерминированный идентификатор слота для момента времени.
// Формат сортируемый: slot_2025-10-15_09-30.
func SlotID(t time.Time) string {
	return fmt.Sprintf("slot_%s", t.UTC().Format(SlotIDTimeFormat))
}

// SlotAvailability пара "слот + доступность" для выдачи наружу
type SlotAvailability struct {
	Slot      Slot
	Available bool
}
