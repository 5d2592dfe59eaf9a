package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (неположительная длительность, нулевая дата)
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
