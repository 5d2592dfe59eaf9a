package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	availabilityRepo "github.com/saraivajv/super1-booking-service/internal/infra/storage/availability"
	"github.com/saraivajv/super1-booking-service/internal/service/availability/models"
	"github.com/saraivajv/super1-booking-service/pkg/types"
)

// Service сервис для работы с окнами доступности провайдеров
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Create создает окно доступности провайдера.
// Окно принадлежит создавшему его пользователю. Пересечение с уже
// существующими окнами того же дня не запрещается: пересекающиеся окна
// дают объединение слотов, дубликаты схлопываются при генерации.
func (s *Service) Create(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Create: creating window for provider=%d, day=%d, %s-%s",
		req.UserID, req.DayOfWeek, req.StartTime, req.EndTime)

	window, err := toDomainWindow(req)
	if err != nil {
		s.logger.Warn("Create: validation failed for provider=%d: %v", req.UserID, err)
		return nil, err
	}

	created, err := s.availabilityRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("Create: repository error for provider=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created window id=%d for provider=%d", created.ID, req.UserID)
	return models.FromDomainWindow(created), nil
}

// ListByProvider получает все окна доступности провайдера
func (s *Service) ListByProvider(ctx context.Context, providerID int64) (*models.WindowListResponse, error) {
	s.logger.Info("ListByProvider: fetching windows for provider=%d", providerID)

	if providerID <= 0 {
		s.logger.Warn("ListByProvider: invalid provider id=%d", providerID)
		return nil, fmt.Errorf("%w: provider id must be positive", ErrInvalidInput)
	}

	windows, err := s.availabilityRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByProvider: successfully fetched %d windows for provider=%d", len(windows), providerID)
	return models.FromDomainWindowList(windows), nil
}

// Delete удаляет окно доступности
// Удалить окно может только его провайдер. Существующие бронирования
// не затрагиваются, окно влияет только на будущие слоты.
func (s *Service) Delete(ctx context.Context, windowID int64, userID int64) error {
	s.logger.Info("Delete: deleting window id=%d by user=%d", windowID, userID)

	window, err := s.availabilityRepo.GetByID(ctx, windowID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("Delete: window id=%d not found", windowID)
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for window id=%d: %v", windowID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if window.ProviderID != userID {
		s.logger.Warn("Delete: access denied for user=%d to window id=%d", userID, windowID)
		return ErrAccessDenied
	}

	if err := s.availabilityRepo.Delete(ctx, windowID); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("Delete: window id=%d not found during delete", windowID)
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for window id=%d: %v", windowID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted window id=%d", windowID)
	return nil
}

// toDomainWindow валидирует запрос и конвертирует его в domain модель
func toDomainWindow(req *models.CreateWindowRequest) (*domain.AvailabilityWindow, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: day of week must be between 0 and 6", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	return &domain.AvailabilityWindow{
		ProviderID: req.UserID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  startTime,
		EndTime:    endTime,
	}, nil
}
