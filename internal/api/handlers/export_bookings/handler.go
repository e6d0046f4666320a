package export_bookings

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const msgInvalidFormat = `Invalid format. Must be "csv" or "xlsx"`

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/export
// Query params: format (optional, csv|xlsx, default csv)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	var (
		data        []byte
		contentType string
		err         error
	)

	switch format {
	case "csv":
		data, err = h.service.ExportCSV(r.Context())
		contentType = "text/csv"
	case "xlsx":
		data, err = h.service.ExportXLSX(r.Context())
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		h.logger.Warn("GET /bookings/export - Invalid format %q", format)
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	if err != nil {
		h.logger.Error("GET /bookings/export - Failed to export bookings: format=%s, error=%v", format, err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("bookings-%s.%s", time.Now().UTC().Format(domain.DateFormat), format)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)

	h.logger.Info("GET /bookings/export - Export completed: format=%s, bytes=%d", format, len(data))
}
