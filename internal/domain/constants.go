package domain

// Slot generation constants
const (
	// SlotStepMinutes фиксированный шаг генерации кандидатов слотов.
	// Шаг не зависит от длительности услуги: соседние кандидаты могут
	// пересекаться между собой, клиент выбирает один из них.
	SlotStepMinutes = 15

	// MaxDurationMinutes верхняя граница длительности услуги (сутки)
	MaxDurationMinutes = 24 * 60
)

// Review constants
const (
	MinReviewRating  = 1
	MaxReviewRating  = 5
	MaxCommentLength = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, при которых бронирование занимает
// свой интервал времени. Используется при подсчёте пересечений.
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}

// InactiveStatuses список статусов, освобождающих интервал времени
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
