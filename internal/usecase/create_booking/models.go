package create_booking

import "time"

// Request модель запроса на создание бронирования.
// Поля приходят уже нормализованными граничным слоем (trim, lowercase email);
// ядро сохраняет их дословно.
type Request struct {
	SlotID        string
	CustomerName  string
	CustomerEmail string
	Reason        string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	SlotID        string
	Datetime      time.Time // снимок времени слота
	CustomerName  string
	CustomerEmail string
	Reason        string
	Status        string // всегда "pending" для нового бронирования
	CreatedAt     time.Time
}
