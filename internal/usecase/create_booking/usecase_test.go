package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	"github.com/saraivajv/super1-booking-service/internal/integrations/catalogservice"
	"github.com/saraivajv/super1-booking-service/pkg/txmanager"
)

// Моки зависимостей

type mockBookingRepo struct {
	existing  []*domain.Booking
	created   *domain.Booking
	createErr error
	getErr    error
	nextID    int64
}

func (m *mockBookingRepo) GetActiveByProviderAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return m.existing, m.getErr
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *booking
	created.ID = m.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
}

type mockCatalogClient struct {
	variation    *catalogservice.ServiceVariation
	variationErr error
	service      *catalogservice.Service
	serviceErr   error
}

func (m *mockCatalogClient) GetServiceVariation(_ context.Context, _ int64) (*catalogservice.ServiceVariation, error) {
	return m.variation, m.variationErr
}

func (m *mockCatalogClient) GetService(_ context.Context, _ int64) (*catalogservice.Service, error) {
	return m.service, m.serviceErr
}

// passthroughTxManager исполняет fn без транзакции
type passthroughTxManager struct {
	err error
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultCatalog() *mockCatalogClient {
	return &mockCatalogClient{
		variation: &catalogservice.ServiceVariation{
			ID:              5,
			ServiceID:       3,
			Name:            "Стрижка 30 минут",
			DurationMinutes: 30,
			Price:           1500,
		},
		service: &catalogservice.Service{
			ID:         3,
			ProviderID: 10,
			Title:      "Барбершоп",
		},
	}
}

func validRequest() *Request {
	return &Request{
		ClientID:           7,
		ServiceVariationID: 5,
		StartTime:          time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &mockBookingRepo{nextID: 42}
	uc := NewUseCase(repo, defaultCatalog(), &passthroughTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(7), resp.ClientID)
	assert.Equal(t, int64(10), resp.ProviderID)
	assert.Equal(t, "2025-10-13", resp.BookingDate.Format(domain.DateFormat))
	assert.Equal(t, "09:00", resp.StartTime.String())
	assert.Equal(t, "09:30", resp.EndTime.String())
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// Денормализованные данные каталога попали в бронирование
	assert.Equal(t, int64(3), resp.ServiceID)
	assert.Equal(t, "Барбершоп", resp.ServiceTitle)
	assert.Equal(t, 1500.0, resp.ServicePrice)
}

func TestExecute_OverlapConflict(t *testing.T) {
	// Существующее бронирование 09:00-09:30, попытка на 09:15 - конфликт
	repo := &mockBookingRepo{existing: []*domain.Booking{
		{ID: 1, ProviderID: 10, StartTime: "09:00", EndTime: "09:30", Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(repo, defaultCatalog(), &passthroughTxManager{}, nopLogger{})

	req := validRequest()
	req.StartTime = time.Date(2025, 10, 13, 9, 15, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Nil(t, repo.created, "no booking must be written on conflict")
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	// Существующее бронирование 09:00-09:30, новое начинается ровно в 09:30
	repo := &mockBookingRepo{nextID: 43, existing: []*domain.Booking{
		{ID: 1, ProviderID: 10, StartTime: "09:00", EndTime: "09:30", Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(repo, defaultCatalog(), &passthroughTxManager{}, nopLogger{})

	req := validRequest()
	req.StartTime = time.Date(2025, 10, 13, 9, 30, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "09:30", resp.StartTime.String())
	assert.Equal(t, "10:00", resp.EndTime.String())
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	repo := &mockBookingRepo{nextID: 44, existing: []*domain.Booking{
		{ID: 1, ProviderID: 10, StartTime: "09:00", EndTime: "09:30", Status: domain.StatusCancelled},
	}}
	uc := NewUseCase(repo, defaultCatalog(), &passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_VariationNotFound(t *testing.T) {
	catalog := defaultCatalog()
	catalog.variationErr = catalogservice.ErrVariationNotFound
	uc := NewUseCase(&mockBookingRepo{}, catalog, &passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVariationNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	catalog := defaultCatalog()
	catalog.serviceErr = catalogservice.ErrServiceNotFound
	uc := NewUseCase(&mockBookingRepo{}, catalog, &passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_CrossesDayBoundary(t *testing.T) {
	// Начало 23:45 + 30 минут выходит за границы суток
	uc := NewUseCase(&mockBookingRepo{}, defaultCatalog(), &passthroughTxManager{}, nopLogger{})

	req := validRequest()
	req.StartTime = time.Date(2025, 10, 13, 23, 45, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_SerializationFailureSurfacesAsConflict(t *testing.T) {
	// Исчерпанные повторы сериализации - проигранная гонка, для клиента конфликт
	txErr := wrapSentinel(txmanager.ErrSerializationFailure)
	uc := NewUseCase(&mockBookingRepo{}, defaultCatalog(), &passthroughTxManager{err: txErr}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, defaultCatalog(), &passthroughTxManager{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "non-positive client", req: &Request{ServiceVariationID: 5, StartTime: time.Now()}},
		{name: "non-positive variation", req: &Request{ClientID: 7, StartTime: time.Now()}},
		{name: "zero start time", req: &Request{ClientID: 7, ServiceVariationID: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryErrorRollsUpAsInternal(t *testing.T) {
	repo := &mockBookingRepo{getErr: errors.New("boom")}
	uc := NewUseCase(repo, defaultCatalog(), &passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

// wrapSentinel имитирует обертку, которую transaction manager накладывает на
// сентинел при исчерпании повторов
func wrapSentinel(err error) error {
	return errors.Join(errors.New("serializable transaction failed after 3 retries"), err)
}
