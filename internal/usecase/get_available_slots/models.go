package get_available_slots

import "time"

// Response модель ответа со слотами и их доступностью
type Response struct {
	Slots []Slot
}

// Slot слот каталога с вычисленной доступностью
type Slot struct {
	ID        string
	Datetime  time.Time
	Available bool
}
