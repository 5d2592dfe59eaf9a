package create_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/saraivajv/super1-booking-service/internal/api/handlers"
	"github.com/saraivajv/super1-booking-service/internal/api/middleware"
	"github.com/saraivajv/super1-booking-service/internal/service/reviews"
	"github.com/saraivajv/super1-booking-service/internal/service/reviews/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBookingNotFound    = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgNotCompleted       = "бронирование ещё не завершено"
	msgDuplicateReview    = "отзыв на это бронирование уже существует"
	msgInvalidReview      = "некорректные данные отзыва"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/reviews - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Создаем отзыв (сервис проверит права и статус бронирования)
	result, err := h.service.Create(r.Context(), &models.CreateReviewRequest{
		UserID:    userID,
		BookingID: bookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reviews - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/reviews - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reviews.ErrBookingNotCompleted):
			h.logger.Warn("POST /bookings/{id}/reviews - Booking not completed: booking_id=%d", bookingID)
			handlers.RespondUnprocessableEntity(w, msgNotCompleted)

		case errors.Is(err, reviews.ErrDuplicateReview):
			h.logger.Warn("POST /bookings/{id}/reviews - Duplicate review: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgDuplicateReview)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reviews - Invalid review: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidReview)

		default:
			h.logger.Error("POST /bookings/{id}/reviews - Failed to create review: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reviews - Review created successfully: review_id=%d, booking_id=%d, user_id=%d",
		result.ID, bookingID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
