package reviews

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда отзыв пытается оставить не клиент бронирования
	ErrAccessDenied = errors.New("access denied")

	// ErrBookingNotCompleted возвращается, когда бронирование ещё не завершено
	ErrBookingNotCompleted = errors.New("booking is not completed")

	// ErrDuplicateReview возвращается, когда отзыв на бронирование уже существует
	ErrDuplicateReview = errors.New("review already exists for this booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
