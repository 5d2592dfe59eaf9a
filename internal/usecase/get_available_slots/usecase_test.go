package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	"github.com/saraivajv/super1-booking-service/pkg/types"
)

// Моки репозиториев

type mockBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (m *mockBookingRepo) GetActiveByProviderAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return m.bookings, m.err
}

type mockAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
	err     error
}

func (m *mockAvailabilityRepo) ListByProviderAndDay(_ context.Context, _ int64, _ int) ([]*domain.AvailabilityWindow, error) {
	return m.windows, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-10-13 - понедельник
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func mondayWindow(start, end types.TimeString) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ID:         1,
		ProviderID: 10,
		DayOfWeek:  1,
		StartTime:  start,
		EndTime:    end,
	}
}

func slotTimes(slots []domain.Slot) []string {
	times := make([]string, len(slots))
	for i, s := range slots {
		times[i] = s.StartTime.String()
	}
	return times
}

func TestExecute_StrideIndependentOfDuration(t *testing.T) {
	// Окно 09:00-10:00, длительность 30 минут: кандидаты идут с шагом 15,
	// последний - 09:30 (заканчивается ровно в конец окна), 09:45 не влезает
	uc := NewUseCase(
		&mockBookingRepo{},
		&mockAvailabilityRepo{windows: []*domain.AvailabilityWindow{mondayWindow("09:00", "10:00")}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 10, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, slotTimes(resp.Slots))
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_OverlapMarking(t *testing.T) {
	// Бронирование 09:00-09:30: кандидаты 09:00 и 09:15 пересекаются с ним,
	// 09:30 начинается ровно в момент конца бронирования и доступен
	uc := NewUseCase(
		&mockBookingRepo{bookings: []*domain.Booking{
			{ID: 1, ProviderID: 10, StartTime: "09:00", EndTime: "09:30", Status: domain.StatusConfirmed},
		}},
		&mockAvailabilityRepo{windows: []*domain.AvailabilityWindow{mondayWindow("09:00", "10:00")}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 10, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	byTime := map[string]bool{}
	for _, slot := range resp.Slots {
		byTime[slot.StartTime.String()] = slot.Available
	}

	assert.False(t, byTime["09:00"])
	assert.False(t, byTime["09:15"])
	assert.True(t, byTime["09:30"])
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	uc := NewUseCase(
		&mockBookingRepo{bookings: []*domain.Booking{
			{ID: 1, ProviderID: 10, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCancelled},
		}},
		&mockAvailabilityRepo{windows: []*domain.AvailabilityWindow{mondayWindow("09:00", "10:00")}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 10, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.StartTime)
	}
}

func TestExecute_NoWindowsReturnsEmptyList(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockAvailabilityRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 10, Date: monday, DurationMinutes: 60})
	require.NoError(t, err)
	require.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DurationLongerThanWindow(t *testing.T) {
	// Длительность больше окна: ни один кандидат не помещается
	uc := NewUseCase(
		&mockBookingRepo{},
		&mockAvailabilityRepo{windows: []*domain.AvailabilityWindow{mondayWindow("09:00", "10:00")}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 10, Date: monday, DurationMinutes: 90})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MultipleWindowsSortedAndDeduped(t *testing.T) {
	// Два окна в обратном порядке плюс пересечение: результат отсортирован,
	// дубликаты от пересекающихся окон схлопнуты
	uc := NewUseCase(
		&mockBookingRepo{},
		&mockAvailabilityRepo{windows: []*domain.AvailabilityWindow{
			mondayWindow("14:00", "15:00"),
			mondayWindow("09:00", "10:00"),
			mondayWindow("14:30", "15:30"),
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 10, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "09:15", "09:30",
		"14:00", "14:15", "14:30", "14:45", "15:00",
	}, slotTimes(resp.Slots))
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockAvailabilityRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "non-positive provider", req: &Request{ProviderID: 0, Date: monday, DurationMinutes: 30}},
		{name: "zero date", req: &Request{ProviderID: 10, DurationMinutes: 30}},
		{name: "zero duration", req: &Request{ProviderID: 10, Date: monday, DurationMinutes: 0}},
		{name: "negative duration", req: &Request{ProviderID: 10, Date: monday, DurationMinutes: -15}},
		{name: "duration above max", req: &Request{ProviderID: 10, Date: monday, DurationMinutes: domain.MaxDurationMinutes + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryErrors(t *testing.T) {
	repoErr := errors.New("boom")

	t.Run("availability repo error", func(t *testing.T) {
		uc := NewUseCase(&mockBookingRepo{}, &mockAvailabilityRepo{err: repoErr}, nopLogger{})
		_, err := uc.Execute(context.Background(), &Request{ProviderID: 10, Date: monday, DurationMinutes: 30})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("booking repo error", func(t *testing.T) {
		uc := NewUseCase(
			&mockBookingRepo{err: repoErr},
			&mockAvailabilityRepo{windows: []*domain.AvailabilityWindow{mondayWindow("09:00", "10:00")}},
			nopLogger{},
		)
		_, err := uc.Execute(context.Background(), &Request{ProviderID: 10, Date: monday, DurationMinutes: 30})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
