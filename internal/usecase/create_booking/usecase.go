package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      SlotCatalog
	lockManager  LockManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog SlotCatalog,
	lockManager LockManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		lockManager:  lockManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверки выполняются по порядку, срабатывает первая ошибка:
// слот должен существовать в каталоге, затем на слоте не должно быть
// активного (не denied) бронирования. Вся последовательность
// check-then-create выполняется под блокировкой, поэтому из двух
// конкурирующих запросов на один слот успешным будет ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%s, customer=%s", req.SlotID, req.CustomerEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 3. Выполняем check-then-create под блокировкой
	err := uc.lockManager.DoSerializable(ctx, func(lockCtx context.Context) error {
		// 3.1. Разрешаем слот в каталоге
		slot, ok := uc.catalog.Resolve(req.SlotID)
		if !ok {
			uc.logger.Warn("CreateBooking: slot id=%s not found in catalog", req.SlotID)
			return ErrInvalidSlot
		}

		// 3.2. Читаем текущий набор бронирований.
		// Ошибка чтения деградирует до пустого набора: нечитаемое хранилище
		// трактуется как "бронирований еще нет".
		bookings, err := uc.bookingRepo.List(lockCtx)
		if err != nil {
			uc.logger.Warn("CreateBooking: failed to list bookings, treating storage as empty: %v", err)
			bookings = nil
		}

		// 3.3. Проверяем, что слот не занят активным бронированием
		for _, b := range bookings {
			if b.SlotID == req.SlotID && b.IsActive() {
				uc.logger.Warn("CreateBooking: slot id=%s is held by booking id=%s (status=%s)",
					req.SlotID, b.ID, b.Status)
				return ErrSlotAlreadyBooked
			}
		}

		// 3.4. Создаем бронирование со снимком времени слота
		booking := &domain.Booking{
			ID:            newBookingID(),
			SlotID:        slot.ID,
			Datetime:      slot.Datetime,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			Reason:        req.Reason,
			Status:        domain.StatusPending,
			CreatedAt:     now.UTC(),
		}

		// 3.5. Сохраняем
		if err := uc.bookingRepo.Insert(lockCtx, booking); err != nil {
			uc.logger.Error("CreateBooking: failed to persist booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to persist booking: %v", ErrStorageUnavailable, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for slot=%s", result.ID, result.SlotID)

	// 4. Имитируем календарное приглашение (вне критической секции)
	uc.notifier.CalendarInvite(result)

	return &Response{
		ID:            result.ID,
		SlotID:        result.SlotID,
		Datetime:      result.Datetime,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		Reason:        result.Reason,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}, nil
}

// newBookingID генерирует уникальный ID бронирования.
// UUID исключает коллизии при конкурирующих вызовах.
func newBookingID() string {
	return fmt.Sprintf("booking_%s", uuid.NewString())
}
