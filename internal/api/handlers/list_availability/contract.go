package list_availability

import (
	"context"

	"github.com/saraivajv/super1-booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	ListByProvider(ctx context.Context, providerID int64) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
