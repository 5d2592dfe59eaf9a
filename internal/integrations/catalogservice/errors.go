package catalogservice

import "errors"

var (
	// ErrVariationNotFound возвращается, когда вариация услуги не найдена
	ErrVariationNotFound = errors.New("catalogservice client: service variation not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalogservice client: service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
