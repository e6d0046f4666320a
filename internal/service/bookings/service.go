package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/export"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/bookingstore"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	lockManager LockManager
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	lockManager LockManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		lockManager: lockManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetAll возвращает все бронирования, отсортированные по возрастанию datetime.
// Порядок создания на сортировку не влияет; равные datetime упорядочиваются
// по createdAt для стабильной выдачи.
func (s *Service) GetAll(ctx context.Context) (*models.BookingListResponse, error) {
	bookings := s.sortedBookings(ctx, "GetAll")

	s.logger.Info("GetAll: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в статус approved или denied.
// Ограничений на текущий статус нет: повторный перевод уже обработанного
// бронирования допустим и всегда перезаписывает хранилище.
// Denied немедленно освобождает слот для новых бронирований.
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, status string) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s -> %s", bookingID, status)

	domainStatus, ok := domain.ToBookingStatus(status)
	if !ok || domainStatus == domain.StatusPending {
		s.logger.Warn("UpdateStatus: invalid status %q for booking id=%s", status, bookingID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var updated *domain.Booking

	err := s.lockManager.DoSerializable(ctx, func(lockCtx context.Context) error {
		booking, err := s.bookingRepo.UpdateStatus(lockCtx, bookingID, domainStatus)
		if err != nil {
			return err
		}
		updated = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, bookingstore.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingstore.ErrStorageUnavailable):
			s.logger.Error("UpdateStatus: failed to persist booking id=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - persist: %v", ErrStorageUnavailable, err)
		default:
			s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: booking id=%s is now %s", bookingID, updated.Status)

	// Имитируем письмо о смене статуса
	s.notifier.StatusChanged(updated)

	return models.FromDomainBooking(updated), nil
}

// ExportCSV выгружает все бронирования в CSV (порядок как в GetAll)
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	bookings := s.sortedBookings(ctx, "ExportCSV")

	data, err := export.BookingsCSV(bookings)
	if err != nil {
		s.logger.Error("ExportCSV: %v", err)
		return nil, fmt.Errorf("%w: ExportCSV: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d bookings", len(bookings))
	return data, nil
}

// ExportXLSX выгружает все бронирования в XLSX (порядок как в GetAll)
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, error) {
	bookings := s.sortedBookings(ctx, "ExportXLSX")

	data, err := export.BookingsXLSX(bookings)
	if err != nil {
		s.logger.Error("ExportXLSX: %v", err)
		return nil, fmt.Errorf("%w: ExportXLSX: %v", ErrInternal, err)
	}

	s.logger.Info("ExportXLSX: exported %d bookings", len(bookings))
	return data, nil
}

// listDegraded читает бронирования, деградируя до пустого набора при ошибке чтения
func (s *Service) listDegraded(ctx context.Context, op string) []*domain.Booking {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Warn("%s: failed to list bookings, treating storage as empty: %v", op, err)
		return nil
	}
	return bookings
}

func (s *Service) sortedBookings(ctx context.Context, op string) []*domain.Booking {
	bookings := s.listDegraded(ctx, op)
	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].Datetime.Equal(bookings[j].Datetime) {
			return bookings[i].CreatedAt.Before(bookings[j].CreatedAt)
		}
		return bookings[i].Datetime.Before(bookings[j].Datetime)
	})
	return bookings
}
