package create_booking

import (
	"fmt"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	"github.com/saraivajv/super1-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Валидация выполняется до любого обращения к хранилищу.
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceVariationID <= 0 {
		return fmt.Errorf("%w: serviceVariationID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	return nil
}

// findOverlap возвращает первое активное бронирование, интервал которого
// пересекается с [start, end) по полуоткрытой семантике.
// Бронирование, заканчивающееся ровно в start (или начинающееся ровно
// в end), не конфликтует — стыкующиеся интервалы легальны.
func findOverlap(start, end types.TimeString, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.Overlaps(start, end) {
			return booking
		}
	}
	return nil
}
