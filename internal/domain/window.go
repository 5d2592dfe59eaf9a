package domain

import (
	"time"

	"github.com/saraivajv/super1-booking-service/pkg/types"
)

// AvailabilityWindow represents a recurring weekly interval during which
// a provider accepts bookings. DayOfWeek follows time.Weekday (Sunday = 0).
// Windows of one provider may overlap each other by convention; the engine
// only enforces StartTime < EndTime.
type AvailabilityWindow struct {
	ID         int64
	ProviderID int64
	DayOfWeek  int
	StartTime  types.TimeString
	EndTime    types.TimeString
	CreatedAt  time.Time
}

// IsValid returns true if the window has a sane day and a non-empty interval
func (w *AvailabilityWindow) IsValid() bool {
	return w.DayOfWeek >= 0 && w.DayOfWeek <= 6 && w.StartTime.IsBefore(w.EndTime)
}

// DayOfWeekUTC derives the day-of-week index for a calendar date using UTC.
// The same date always maps to the same day regardless of the caller's zone.
func DayOfWeekUTC(date time.Time) int {
	return int(date.UTC().Weekday())
}
