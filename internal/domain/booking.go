package domain

import (
	"errors"
	"time"

	"github.com/saraivajv/super1-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// validTransitions is the closed transition table of the booking lifecycle.
// Terminal states have no outgoing transitions.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ErrUnknownStatus is returned when a raw string is not a valid status
var ErrUnknownStatus = errors.New("unknown booking status")

// ParseBookingStatus converts a raw string into a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

// IsTerminal returns true if no further transitions are permitted from s
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// CanTransitionTo returns true if the transition s -> next is permitted
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking represents a confirmed reservation of a provider's time range.
// For a fixed provider, bookings with status other than cancelled are
// pairwise non-overlapping on the half-open interval [StartTime, EndTime).
type Booking struct {
	ID                 int64
	ClientID           int64
	ProviderID         int64
	ServiceVariationID int64
	BookingDate        time.Time
	StartTime          types.TimeString
	EndTime            types.TimeString
	Status             BookingStatus

	// Denormalized catalog data for history
	ServiceID    int64
	ServiceTitle string
	ServicePrice float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time range
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// Overlaps reports whether [start, end) intersects the booking's interval.
// Half-open semantics: back-to-back intervals do not overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}

// ProviderBookingsFilter фильтр для выборки бронирований провайдера
type ProviderBookingsFilter struct {
	ProviderID      int64
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
