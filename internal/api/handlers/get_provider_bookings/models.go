package get_provider_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	"github.com/saraivajv/super1-booking-service/internal/service/bookings/models"
)

// ToServiceRequest создает запрос сервиса из query параметров
func ToServiceRequest(providerID, userID int64, query url.Values) (*models.GetProviderBookingsRequest, error) {
	req := &models.GetProviderBookingsRequest{
		UserID:     userID,
		ProviderID: providerID,
	}

	if startStr := query.Get("startDate"); startStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endStr := query.Get("endDate"); endStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if includeStr := query.Get("includeInactive"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = include
	}

	return req, nil
}
