package delete_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/saraivajv/super1-booking-service/internal/api/handlers"
	"github.com/saraivajv/super1-booking-service/internal/api/middleware"
	"github.com/saraivajv/super1-booking-service/internal/service/availability"
)

const (
	msgInvalidWindowID = "некорректный ID окна доступности"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgNotFound        = "окно доступности не найдено"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/providers/{providerId}/availability/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем windowId из URL
	vars := mux.Vars(r)
	windowIDStr := vars["windowId"]

	windowID, err := strconv.ParseInt(windowIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /providers/{id}/availability/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /providers/{id}/availability/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем окно (сервис проверит владельца)
	if err := h.service.Delete(r.Context(), windowID, userID); err != nil {
		switch {
		case errors.Is(err, availability.ErrWindowNotFound):
			h.logger.Warn("DELETE /providers/{id}/availability/{id} - Window not found: window_id=%d", windowID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("DELETE /providers/{id}/availability/{id} - Access denied: window_id=%d, user_id=%d",
				windowID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /providers/{id}/availability/{id} - Failed to delete window: window_id=%d, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /providers/{id}/availability/{id} - Window deleted successfully: window_id=%d, user_id=%d",
		windowID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
