package create_booking

import (
	"regexp"
	"strings"
	"time"

	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID        string `json:"slotId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Reason        string `json:"reason"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string `json:"id"`
	SlotID        string `json:"slotId"`
	Datetime      string `json:"datetime"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// HasRequiredFields проверяет, что все обязательные поля заполнены
// (после обрезки пробелов)
func (r *CreateBookingRequest) HasRequiredFields() bool {
	return strings.TrimSpace(r.SlotID) != "" &&
		strings.TrimSpace(r.CustomerName) != "" &&
		strings.TrimSpace(r.CustomerEmail) != "" &&
		strings.TrimSpace(r.Reason) != ""
}

// HasValidEmail проверяет формат email
func (r *CreateBookingRequest) HasValidEmail() bool {
	return emailPattern.MatchString(strings.TrimSpace(r.CustomerEmail))
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Нормализация выполняется здесь, на граничном слое: имя и причина
// обрезаются, email обрезается и приводится к нижнему регистру.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		SlotID:        strings.TrimSpace(r.SlotID),
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(r.CustomerEmail)),
		Reason:        strings.TrimSpace(r.Reason),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		SlotID:        resp.SlotID,
		Datetime:      resp.Datetime.UTC().Format(time.RFC3339),
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		Reason:        resp.Reason,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
