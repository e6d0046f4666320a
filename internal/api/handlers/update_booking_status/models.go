package update_booking_status

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// IsAllowedStatus проверяет, что запрошен допустимый целевой статус.
// Граничный слой пропускает только approved и denied; pending как целевой
// статус не существует.
func (r *UpdateStatusRequest) IsAllowedStatus() bool {
	return r.Status == string(domain.StatusApproved) || r.Status == string(domain.StatusDenied)
}
