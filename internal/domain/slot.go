package domain

import "github.com/saraivajv/super1-booking-service/pkg/types"

// Slot represents a candidate start time for booking a given duration on a
// given date. The availability flag is advisory: it reflects the bookings
// visible at generation time and may be stale by the time a client commits.
type Slot struct {
	StartTime types.TimeString
	Available bool
}
