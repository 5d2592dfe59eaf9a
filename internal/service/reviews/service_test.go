package reviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	bookingRepo "github.com/saraivajv/super1-booking-service/internal/infra/storage/booking"
	reviewRepo "github.com/saraivajv/super1-booking-service/internal/infra/storage/review"
	"github.com/saraivajv/super1-booking-service/internal/service/reviews/models"
)

// mockReviewRepo хранит отзывы в памяти с уникальностью по booking_id
type mockReviewRepo struct {
	byBooking map[int64]*domain.Review
	nextID    int64
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{byBooking: make(map[int64]*domain.Review), nextID: 1}
}

func (m *mockReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	if _, exists := m.byBooking[review.BookingID]; exists {
		return nil, reviewRepo.ErrDuplicateReview
	}
	created := *review
	created.ID = m.nextID
	created.CreatedAt = time.Now()
	m.nextID++
	m.byBooking[review.BookingID] = &created
	return &created, nil
}

func (m *mockReviewRepo) GetByBookingID(_ context.Context, bookingID int64) (*domain.Review, error) {
	r, ok := m.byBooking[bookingID]
	if !ok {
		return nil, reviewRepo.ErrReviewNotFound
	}
	return r, nil
}

func (m *mockReviewRepo) ListByServiceID(_ context.Context, serviceID int64) ([]*domain.Review, error) {
	var result []*domain.Review
	for _, r := range m.byBooking {
		if r.ServiceID == serviceID {
			result = append(result, r)
		}
	}
	return result, nil
}

type mockBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (m *mockBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(bookings ...*domain.Booking) *Service {
	repo := &mockBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return NewService(newMockReviewRepo(), repo, nopLogger{})
}

func completedBooking() *domain.Booking {
	return &domain.Booking{
		ID:        1,
		ClientID:  7,
		ServiceID: 3,
		Status:    domain.StatusCompleted,
	}
}

func validRequest() *models.CreateReviewRequest {
	return &models.CreateReviewRequest{
		UserID:    7,
		BookingID: 1,
		Rating:    5,
		Comment:   "Отличный сервис",
	}
}

func TestCreate_Success(t *testing.T) {
	svc := newService(completedBooking())

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, int64(3), resp.ServiceID, "service id is taken from the booking")
	assert.Equal(t, 5, resp.Rating)
}

func TestCreate_Gating(t *testing.T) {
	t.Run("booking not found", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("not the client", func(t *testing.T) {
		svc := newService(completedBooking())
		req := validRequest()
		req.UserID = 99
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("confirmed booking is not reviewable", func(t *testing.T) {
		b := completedBooking()
		b.Status = domain.StatusConfirmed
		svc := newService(b)
		_, err := svc.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBookingNotCompleted)
	})

	t.Run("cancelled booking is not reviewable", func(t *testing.T) {
		b := completedBooking()
		b.Status = domain.StatusCancelled
		svc := newService(b)
		_, err := svc.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBookingNotCompleted)
	})

	t.Run("second review is rejected", func(t *testing.T) {
		svc := newService(completedBooking())

		_, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrDuplicateReview)
	})
}

func TestCreate_RatingValidation(t *testing.T) {
	svc := newService(completedBooking())

	for _, rating := range []int{0, -1, 6, 100} {
		req := validRequest()
		req.Rating = rating
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "rating %d", rating)
	}

	for _, rating := range []int{1, 5} {
		b := completedBooking()
		b.ID = int64(rating + 10)
		svc := newService(b)
		req := validRequest()
		req.BookingID = b.ID
		req.Rating = rating
		_, err := svc.Create(context.Background(), req)
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestGetServiceReviews(t *testing.T) {
	svc := newService(completedBooking())

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	resp, err := svc.GetServiceReviews(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, resp.Reviews, 1)

	resp, err = svc.GetServiceReviews(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, resp.Reviews)

	_, err = svc.GetServiceReviews(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
