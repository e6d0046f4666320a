package bookingfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/bookingstore"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Repository файловое хранилище бронирований.
//
// Весь набор бронирований хранится одним JSON-документом (массив записей)
// и переписывается целиком при каждой мутации. Защиты от частичной записи
// нет: падение процесса посреди записи может испортить файл. Для масштаба
// сервиса это принятое ограничение; нечитаемый файл трактуется как
// "бронирований еще нет".
type Repository struct {
	path   string
	logger Logger
}

// NewRepository создает файловый репозиторий бронирований
func NewRepository(path string, logger Logger) *Repository {
	return &Repository{
		path:   path,
		logger: logger,
	}
}

// bookingRecord запись бронирования в JSON-документе.
// Формат полей совместим с выдачей API: datetime и createdAt — ISO-8601.
type bookingRecord struct {
	ID            string `json:"id"`
	SlotID        string `json:"slotId"`
	Datetime      string `json:"datetime"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// List возвращает все бронирования из файла.
// Нечитаемый или отсутствующий файл деградирует до пустого списка
// с предупреждением в логе, ошибки наружу не отдаются.
func (r *Repository) List(_ context.Context) ([]*domain.Booking, error) {
	return r.readAll(), nil
}

// Insert добавляет бронирование и переписывает файл целиком
func (r *Repository) Insert(_ context.Context, booking *domain.Booking) error {
	bookings := r.readAll()
	bookings = append(bookings, booking.Clone())
	return r.writeAll(bookings)
}

// UpdateStatus обновляет статус бронирования и переписывает файл целиком
func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	bookings := r.readAll()

	var updated *domain.Booking
	for _, b := range bookings {
		if b.ID == id {
			b.Status = status
			updated = b
			break
		}
	}

	if updated == nil {
		return nil, bookingstore.ErrBookingNotFound
	}

	if err := r.writeAll(bookings); err != nil {
		return nil, err
	}

	return updated.Clone(), nil
}

// readAll читает файл хранилища.
// Любая ошибка чтения или разбора трактуется как пустой набор бронирований.
func (r *Repository) readAll() []*domain.Booking {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("bookingfile: failed to read %s, treating storage as empty: %v", r.path, err)
		}
		return []*domain.Booking{}
	}

	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		r.logger.Warn("bookingfile: failed to parse %s, treating storage as empty: %v", r.path, err)
		return []*domain.Booking{}
	}

	bookings := make([]*domain.Booking, 0, len(records))
	for _, rec := range records {
		booking, err := rec.toDomain()
		if err != nil {
			r.logger.Warn("bookingfile: skipping malformed record id=%s: %v", rec.ID, err)
			continue
		}
		bookings = append(bookings, booking)
	}

	return bookings
}

// writeAll переписывает файл хранилища целиком
func (r *Repository) writeAll(bookings []*domain.Booking) error {
	records := make([]bookingRecord, len(bookings))
	for i, b := range bookings {
		records[i] = fromDomain(b)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: writeAll - marshal bookings: %v", bookingstore.ErrStorageUnavailable, err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("%w: writeAll - create storage directory: %v", bookingstore.ErrStorageUnavailable, err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writeAll - write %s: %v", bookingstore.ErrStorageUnavailable, r.path, err)
	}

	return nil
}

func fromDomain(b *domain.Booking) bookingRecord {
	return bookingRecord{
		ID:            b.ID,
		SlotID:        b.SlotID,
		Datetime:      b.Datetime.UTC().Format(time.RFC3339),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Reason:        b.Reason,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (rec bookingRecord) toDomain() (*domain.Booking, error) {
	datetime, err := time.Parse(time.RFC3339, rec.Datetime)
	if err != nil {
		return nil, fmt.Errorf("parse datetime: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse createdAt: %w", err)
	}

	status, ok := domain.ToBookingStatus(rec.Status)
	if !ok {
		return nil, fmt.Errorf("unknown status %q", rec.Status)
	}

	return &domain.Booking{
		ID:            rec.ID,
		SlotID:        rec.SlotID,
		Datetime:      datetime,
		CustomerName:  rec.CustomerName,
		CustomerEmail: rec.CustomerEmail,
		Reason:        rec.Reason,
		Status:        status,
		CreatedAt:     createdAt,
	}, nil
}
