package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	catalogClient "github.com/saraivajv/super1-booking-service/internal/integrations/catalogservice"
	"github.com/saraivajv/super1-booking-service/pkg/simpletxmanager"
	"github.com/saraivajv/super1-booking-service/pkg/txmanager"
	"github.com/saraivajv/super1-booking-service/pkg/types"
)

// UseCase use case для создания бронирования.
//
// Единственный источник истины о занятости слота: результат
// get_available_slots носит рекомендательный характер и перепроверяется
// здесь. Проверка пересечений и вставка выполняются одним атомарным блоком
// в сериализуемой транзакции; выборка дня блокируется FOR UPDATE, поэтому
// конкурентные попытки бронирования одного провайдера на один день
// выстраиваются последовательно. Вставка первой брони пустого дня не
// находит строк для блокировки — эту гонку закрывает уровень изоляции
// SERIALIZABLE: проигравшая транзакция получает конфликт сериализации,
// повторяется и детерминированно видит пересечение.
type UseCase struct {
	bookingRepo   BookingRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, variation=%d, start=%s",
		req.ClientID, req.ServiceVariationID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем вариацию услуги — длительность читается в момент
	// создания бронирования, не кэшируется
	variation, err := uc.catalogClient.GetServiceVariation(ctx, req.ServiceVariationID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrVariationNotFound) {
			uc.logger.Warn("CreateBooking: variation id=%d not found", req.ServiceVariationID)
			return nil, ErrVariationNotFound
		}
		uc.logger.Error("CreateBooking: failed to get variation id=%d: %v", req.ServiceVariationID, err)
		return nil, fmt.Errorf("%w: failed to get service variation: %v", ErrInternal, err)
	}

	if variation.DurationMinutes <= 0 {
		uc.logger.Error("CreateBooking: variation id=%d has non-positive duration %d",
			variation.ID, variation.DurationMinutes)
		return nil, fmt.Errorf("%w: variation has non-positive duration", ErrInternal)
	}

	// 3. Разрешаем услугу вариации — она определяет провайдера
	service, err := uc.catalogClient.GetService(ctx, variation.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", variation.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", variation.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Вычисляем интервал бронирования в UTC.
	// Дата выводится из момента начала здесь, а не принимается от
	// вызывающего — иначе их нечем держать согласованными.
	startUTC := req.StartTime.UTC()
	bookingDate := time.Date(startUTC.Year(), startUTC.Month(), startUTC.Day(), 0, 0, 0, 0, time.UTC)
	startTime := types.NewTimeString(startUTC)

	endTime, err := startTime.AddMinutes(variation.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: interval %s + %d min crosses day boundary",
			startTime, variation.DurationMinutes)
		return nil, fmt.Errorf("%w: booking must end within the same day", ErrInvalidTimeRange)
	}

	var result *domain.Booking

	// 5. Проверка пересечений и вставка — один атомарный блок.
	// Любая ошибка внутри откатывает транзакцию целиком: на путях
	// отказа не остается частичных записей.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные бронирования провайдера на эту дату (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByProviderAndDate(txCtx, service.ProviderID, bookingDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Проверяем пересечение интервалов
		if conflict := findOverlap(startTime, endTime, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s-%s conflicts with booking id=%d (%s-%s)",
				startTime, endTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotAlreadyBooked
		}

		// 5.3. Создаем бронирование со статусом confirmed
		booking := &domain.Booking{
			ClientID:           req.ClientID,
			ProviderID:         service.ProviderID,
			ServiceVariationID: variation.ID,
			BookingDate:        bookingDate,
			StartTime:          startTime,
			EndTime:            endTime,
			Status:             domain.StatusConfirmed,
			// Денормализация данных каталога
			ServiceID:    service.ID,
			ServiceTitle: service.Title,
			ServicePrice: variation.Price,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Исчерпанные повторы сериализации означают проигранную гонку за
		// тот же интервал — для вызывающего это конфликт, не сбой
		if errors.Is(err, txmanager.ErrSerializationFailure) || errors.Is(err, simpletxmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serialization retries exhausted for provider=%d: %v",
				service.ProviderID, err)
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (provider=%d, %s %s-%s)",
		result.ID, result.ProviderID, result.BookingDate.Format(domain.DateFormat),
		result.StartTime, result.EndTime)

	return &Response{
		ID:                 result.ID,
		ClientID:           result.ClientID,
		ProviderID:         result.ProviderID,
		ServiceVariationID: result.ServiceVariationID,
		BookingDate:        result.BookingDate,
		StartTime:          result.StartTime,
		EndTime:            result.EndTime,
		Status:             string(result.Status),
		ServiceID:          result.ServiceID,
		ServiceTitle:       result.ServiceTitle,
		ServicePrice:       result.ServicePrice,
		CreatedAt:          result.CreatedAt,
		UpdatedAt:          result.UpdatedAt,
	}, nil
}
