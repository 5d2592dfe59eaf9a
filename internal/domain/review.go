package domain

import "time"

// Review represents a client's rating of a completed booking.
// At most one review exists per booking; creation is gated on the booking
// having reached the completed status.
type Review struct {
	ID        int64
	BookingID int64
	UserID    int64
	ServiceID int64 // денормализовано из бронирования для выборки по услуге
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// HasValidRating returns true if the rating is within the 1..5 scale
func (r *Review) HasValidRating() bool {
	return r.Rating >= MinReviewRating && r.Rating <= MaxReviewRating
}
