package create_booking

import "errors"

var (
	// ErrInvalidSlot возвращается, когда ID слота не разрешается в каталоге
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotAlreadyBooked возвращается, когда на слоте уже есть активное бронирование
	ErrSlotAlreadyBooked = errors.New("create_booking: slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStorageUnavailable возвращается, когда не удалось сохранить бронирование
	ErrStorageUnavailable = errors.New("create_booking: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
