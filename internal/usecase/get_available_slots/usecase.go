package get_available_slots

import (
	"context"
	"fmt"

	"github.com/saraivajv/super1-booking-service/internal/domain"
)

// UseCase use case для получения доступных слотов провайдера.
//
// Результат — снимок по двум независимым чтениям (окна доступности и
// активные бронирования) без блокировок. Он может устареть к моменту,
// когда клиент решит бронировать: безопасность бронирования обеспечивает
// не этот use case, а create_booking.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, date=%s, duration=%d",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем день недели по UTC — одна и та же дата всегда
	// отображается в один и тот же день независимо от зоны вызывающего
	dayOfWeek := domain.DayOfWeekUTC(req.Date)

	// 3. Получаем окна доступности на этот день недели
	windows, err := uc.availabilityRepo.ListByProviderAndDay(ctx, req.ProviderID, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	// Нет окон — провайдер недоступен в этот день, пустой список (не ошибка)
	if len(windows) == 0 {
		uc.logger.Info("GetAvailableSlots: provider=%d has no windows on day=%d", req.ProviderID, dayOfWeek)
		return &Response{
			ProviderID:      req.ProviderID,
			Date:            req.Date,
			DurationMinutes: req.DurationMinutes,
			Slots:           []domain.Slot{},
		}, nil
	}

	// 4. Получаем активные бронирования на эту дату
	bookings, err := uc.bookingRepo.GetActiveByProviderAndDate(ctx, req.ProviderID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Генерируем кандидатов по каждому окну и помечаем доступность
	slots := make([]domain.Slot, 0)
	for _, window := range windows {
		candidates, err := generateCandidates(window, req.DurationMinutes)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to generate candidates for window id=%d: %v", window.ID, err)
			return nil, fmt.Errorf("%w: failed to generate candidates: %v", ErrInternal, err)
		}
		slots = append(slots, markAvailability(candidates, req.DurationMinutes, bookings)...)
	}

	// 6. Выдаем слоты в порядке возрастания времени начала, без дублей
	// от пересекающихся окон
	sortSlots(slots)
	slots = dedupeSlots(slots)

	uc.logger.Info("GetAvailableSlots: generated %d slots for provider=%d, date=%s",
		len(slots), req.ProviderID, req.Date.Format(domain.DateFormat))

	return &Response{
		ProviderID:      req.ProviderID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}
