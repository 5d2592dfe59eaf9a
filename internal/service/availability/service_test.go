package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	availabilityRepo "github.com/saraivajv/super1-booking-service/internal/infra/storage/availability"
	"github.com/saraivajv/super1-booking-service/internal/service/availability/models"
)

// mockAvailabilityRepo хранит окна в памяти
type mockAvailabilityRepo struct {
	windows map[int64]*domain.AvailabilityWindow
	nextID  int64
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{windows: make(map[int64]*domain.AvailabilityWindow), nextID: 1}
}

func (m *mockAvailabilityRepo) Create(_ context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	created := *window
	created.ID = m.nextID
	m.nextID++
	m.windows[created.ID] = &created
	return &created, nil
}

func (m *mockAvailabilityRepo) GetByID(_ context.Context, id int64) (*domain.AvailabilityWindow, error) {
	w, ok := m.windows[id]
	if !ok {
		return nil, availabilityRepo.ErrWindowNotFound
	}
	return w, nil
}

func (m *mockAvailabilityRepo) ListByProvider(_ context.Context, providerID int64) ([]*domain.AvailabilityWindow, error) {
	var result []*domain.AvailabilityWindow
	for _, w := range m.windows {
		if w.ProviderID == providerID {
			result = append(result, w)
		}
	}
	return result, nil
}

func (m *mockAvailabilityRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.windows[id]; !ok {
		return availabilityRepo.ErrWindowNotFound
	}
	delete(m.windows, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *models.CreateWindowRequest {
	return &models.CreateWindowRequest{
		UserID:    10,
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "18:00",
	}
}

func TestCreate_Success(t *testing.T) {
	svc := NewService(newMockAvailabilityRepo(), nopLogger{})

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ProviderID)
	assert.Equal(t, 1, resp.DayOfWeek)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "18:00", resp.EndTime)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newMockAvailabilityRepo(), nopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.CreateWindowRequest)
	}{
		{name: "non-positive user", mutate: func(r *models.CreateWindowRequest) { r.UserID = 0 }},
		{name: "day too large", mutate: func(r *models.CreateWindowRequest) { r.DayOfWeek = 7 }},
		{name: "negative day", mutate: func(r *models.CreateWindowRequest) { r.DayOfWeek = -1 }},
		{name: "bad start time", mutate: func(r *models.CreateWindowRequest) { r.StartTime = "9am" }},
		{name: "bad end time", mutate: func(r *models.CreateWindowRequest) { r.EndTime = "25:00" }},
		{name: "empty interval", mutate: func(r *models.CreateWindowRequest) { r.EndTime = "09:00" }},
		{name: "inverted interval", mutate: func(r *models.CreateWindowRequest) { r.StartTime = "18:00"; r.EndTime = "09:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_EndOfDayBoundary(t *testing.T) {
	svc := NewService(newMockAvailabilityRepo(), nopLogger{})

	req := validRequest()
	req.StartTime = "22:00"
	req.EndTime = "24:00"

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "24:00", resp.EndTime)
}

func TestListByProvider(t *testing.T) {
	repo := newMockAvailabilityRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	resp, err := svc.ListByProvider(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, resp.Windows, 1)

	resp, err = svc.ListByProvider(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)

	_, err = svc.ListByProvider(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := newMockAvailabilityRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	t.Run("not the owner", func(t *testing.T) {
		err := svc.Delete(context.Background(), created.ID, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("owner deletes", func(t *testing.T) {
		err := svc.Delete(context.Background(), created.ID, 10)
		require.NoError(t, err)
	})

	t.Run("already deleted", func(t *testing.T) {
		err := svc.Delete(context.Background(), created.ID, 10)
		assert.ErrorIs(t, err, ErrWindowNotFound)
	})
}
