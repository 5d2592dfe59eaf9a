package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	bookingRepo "github.com/saraivajv/super1-booking-service/internal/infra/storage/booking"
	"github.com/saraivajv/super1-booking-service/internal/service/bookings/models"
	"github.com/saraivajv/super1-booking-service/pkg/ptr"
)

// mockBookingRepo хранит бронирования в памяти
type mockBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newMockBookingRepo(bookings ...*domain.Booking) *mockBookingRepo {
	m := &mockBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		m.bookings[b.ID] = b
	}
	return m
}

func (m *mockBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (m *mockBookingRepo) GetByClientID(_ context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range m.bookings {
		if b.ClientID != clientID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (m *mockBookingRepo) GetByProviderWithFilter(_ context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range m.bookings {
		if b.ProviderID != filter.ProviderID {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := m.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:         1,
		ClientID:   7,
		ProviderID: 10,
		StartTime:  "09:00",
		EndTime:    "09:30",
		Status:     domain.StatusConfirmed,
	}
}

func TestGetByID_Access(t *testing.T) {
	svc := NewService(newMockBookingRepo(confirmedBooking()), nopLogger{})

	t.Run("client can view", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("provider can view", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 10)
		require.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 404, 7)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestUpdateStatus_Transitions(t *testing.T) {
	t.Run("provider completes confirmed booking", func(t *testing.T) {
		svc := NewService(newMockBookingRepo(confirmedBooking()), nopLogger{})

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 10, Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
	})

	t.Run("client cancels confirmed booking", func(t *testing.T) {
		svc := NewService(newMockBookingRepo(confirmedBooking()), nopLogger{})

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 7, Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("client cannot complete", func(t *testing.T) {
		svc := NewService(newMockBookingRepo(confirmedBooking()), nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 7, Status: "completed"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		svc := NewService(newMockBookingRepo(confirmedBooking()), nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 99, Status: "cancelled"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		b := confirmedBooking()
		b.Status = domain.StatusCompleted
		svc := NewService(newMockBookingRepo(b), nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 10, Status: "cancelled"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("cancelling twice is rejected", func(t *testing.T) {
		b := confirmedBooking()
		b.Status = domain.StatusCancelled
		svc := NewService(newMockBookingRepo(b), nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 7, Status: "cancelled"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("confirmed cannot be set explicitly", func(t *testing.T) {
		svc := NewService(newMockBookingRepo(confirmedBooking()), nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 10, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := NewService(newMockBookingRepo(confirmedBooking()), nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 10, Status: "paused"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc := NewService(newMockBookingRepo(), nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 404, &models.UpdateStatusRequest{UserID: 10, Status: "completed"})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetClientBookings(t *testing.T) {
	completed := confirmedBooking()
	completed.ID = 2
	completed.Status = domain.StatusCompleted

	svc := NewService(newMockBookingRepo(confirmedBooking(), completed), nopLogger{})

	t.Run("all bookings", func(t *testing.T) {
		resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{ClientID: 7})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("filtered by status", func(t *testing.T) {
		resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
			ClientID: 7,
			Status:   ptr.Ptr("completed"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "completed", resp.Bookings[0].Status)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
			ClientID: 7,
			Status:   ptr.Ptr("bogus"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetProviderBookings(t *testing.T) {
	cancelled := confirmedBooking()
	cancelled.ID = 2
	cancelled.Status = domain.StatusCancelled

	svc := NewService(newMockBookingRepo(confirmedBooking(), cancelled), nopLogger{})

	t.Run("only the provider sees the schedule", func(t *testing.T) {
		_, err := svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
			UserID:     7,
			ProviderID: 10,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("active only by default", func(t *testing.T) {
		resp, err := svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
			UserID:     10,
			ProviderID: 10,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
	})

	t.Run("include inactive", func(t *testing.T) {
		resp, err := svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
			UserID:          10,
			ProviderID:      10,
			IncludeInactive: true,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})
}
