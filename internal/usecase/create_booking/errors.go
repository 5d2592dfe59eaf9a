package create_booking

import "errors"

var (
	// ErrVariationNotFound возвращается, когда вариация услуги не найдена
	ErrVariationNotFound = errors.New("create_booking: service variation not found")

	// ErrServiceNotFound возвращается, когда услуга вариации не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotAlreadyBooked возвращается, когда запрошенный интервал
	// пересекается с существующим активным бронированием провайдера
	ErrSlotAlreadyBooked = errors.New("create_booking: slot already reserved")

	// ErrInvalidTimeRange возвращается, когда интервал бронирования
	// выходит за границы суток
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
