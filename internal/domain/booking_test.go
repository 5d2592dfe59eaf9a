package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraivajv/super1-booking-service/pkg/types"
)

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"confirmed", "completed", "cancelled"} {
		status, err := ParseBookingStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, BookingStatus(valid), status)
	}

	for _, invalid := range []string{"", "pending", "CONFIRMED", "done"} {
		_, err := ParseBookingStatus(invalid)
		assert.ErrorIs(t, err, ErrUnknownStatus, "input %q", invalid)
	}
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_Overlaps(t *testing.T) {
	booking := &Booking{StartTime: "09:00", EndTime: "09:30"}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{name: "identical interval", start: "09:00", end: "09:30", want: true},
		{name: "starts inside", start: "09:15", end: "09:45", want: true},
		{name: "ends inside", start: "08:45", end: "09:15", want: true},
		{name: "fully contains", start: "08:00", end: "10:00", want: true},
		{name: "fully contained", start: "09:10", end: "09:20", want: true},
		{name: "back-to-back after", start: "09:30", end: "10:00", want: false},
		{name: "back-to-back before", start: "08:30", end: "09:00", want: false},
		{name: "disjoint", start: "11:00", end: "11:30", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.Overlaps(types.TimeString(tt.start), types.TimeString(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}
