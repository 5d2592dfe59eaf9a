package create_booking

import (
	"time"

	"github.com/saraivajv/super1-booking-service/internal/domain"
	createBooking "github.com/saraivajv/super1-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceVariationID int64  `json:"serviceVariationId"`
	StartTime          string `json:"startTime"` // RFC3339, "2025-10-13T09:00:00Z"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	ClientID           int64   `json:"clientId"`
	ProviderID         int64   `json:"providerId"`
	ServiceVariationID int64   `json:"serviceVariationId"`
	BookingDate        string  `json:"bookingDate"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Status             string  `json:"status"`
	ServiceID          int64   `json:"serviceId"`
	ServiceTitle       string  `json:"serviceTitle"`
	ServicePrice       float64 `json:"servicePrice"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:           clientID,
		ServiceVariationID: r.ServiceVariationID,
		StartTime:          startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                 resp.ID,
		ClientID:           resp.ClientID,
		ProviderID:         resp.ProviderID,
		ServiceVariationID: resp.ServiceVariationID,
		BookingDate:        resp.BookingDate.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		EndTime:            resp.EndTime.String(),
		Status:             resp.Status,
		ServiceID:          resp.ServiceID,
		ServiceTitle:       resp.ServiceTitle,
		ServicePrice:       resp.ServicePrice,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
