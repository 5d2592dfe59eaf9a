package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	bookingRepo "github.com/saraivajv/super1-booking-service/internal/infra/storage/booking"
	reviewRepo "github.com/saraivajv/super1-booking-service/internal/infra/storage/review"
	"github.com/saraivajv/super1-booking-service/internal/service/reviews/models"
)

// Service сервис для работы с отзывами
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create создает отзыв на завершённое бронирование
// Проверки идут по порядку: бронирование существует, отзыв оставляет его
// клиент, бронирование завершено, отзыв ещё не оставлен. Гонка двух
// одновременных отзывов разрешается уникальным индексом по booking_id.
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: creating review for booking=%d by user=%d, rating=%d",
		req.BookingID, req.UserID, req.Rating)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed for booking=%d: %v", req.BookingID, err)
		return nil, err
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Create: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Create: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// Отзыв может оставить только клиент бронирования
	if booking.ClientID != req.UserID {
		s.logger.Warn("Create: access denied for user=%d to review booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// Отзывы принимаются только на завершённые бронирования
	if booking.Status != domain.StatusCompleted {
		s.logger.Warn("Create: booking id=%d is not completed, status=%s", req.BookingID, booking.Status)
		return nil, ErrBookingNotCompleted
	}

	review := &domain.Review{
		BookingID: req.BookingID,
		UserID:    req.UserID,
		ServiceID: booking.ServiceID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			s.logger.Warn("Create: review for booking id=%d already exists", req.BookingID)
			return nil, ErrDuplicateReview
		}
		s.logger.Error("Create: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created review id=%d for booking=%d", created.ID, req.BookingID)
	return models.FromDomainReview(created), nil
}

// GetServiceReviews получает отзывы на услугу, новые первыми
func (s *Service) GetServiceReviews(ctx context.Context, serviceID int64) (*models.ReviewListResponse, error) {
	s.logger.Info("GetServiceReviews: fetching reviews for service=%d", serviceID)

	if serviceID <= 0 {
		s.logger.Warn("GetServiceReviews: invalid service id=%d", serviceID)
		return nil, fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
	}

	reviews, err := s.reviewRepo.ListByServiceID(ctx, serviceID)
	if err != nil {
		s.logger.Error("GetServiceReviews: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetServiceReviews - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetServiceReviews: successfully fetched %d reviews for service=%d", len(reviews), serviceID)
	return models.FromDomainReviewList(reviews), nil
}

// validateCreateRequest проверяет входные данные запроса на создание отзыва
func validateCreateRequest(req *models.CreateReviewRequest) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	if req.Rating < domain.MinReviewRating || req.Rating > domain.MaxReviewRating {
		return fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidInput, domain.MinReviewRating, domain.MaxReviewRating)
	}

	if len(req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}
