package create_booking

import (
	"time"

	"github.com/saraivajv/super1-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID           int64     // ID клиента
	ServiceVariationID int64     // ID вариации услуги
	StartTime          time.Time // Запрошенный момент начала (UTC)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                 int64            // ID созданного бронирования
	ClientID           int64            // ID клиента
	ProviderID         int64            // ID провайдера
	ServiceVariationID int64            // ID вариации услуги
	BookingDate        time.Time        // Дата бронирования
	StartTime          types.TimeString // Время начала
	EndTime            types.TimeString // Время окончания
	Status             string           // Статус бронирования

	// Денормализованные данные каталога
	ServiceID    int64   // ID услуги
	ServiceTitle string  // Название услуги
	ServicePrice float64 // Цена вариации на момент бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
