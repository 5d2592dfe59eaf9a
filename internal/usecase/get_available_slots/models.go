package get_available_slots

import (
	"time"

	"github.com/saraivajv/super1-booking-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProviderID      int64     // ID провайдера
	Date            time.Time // Календарная дата (без времени)
	DurationMinutes int       // Длительность услуги в минутах
}

// Response модель ответа со списком слотов
type Response struct {
	ProviderID      int64         // ID провайдера
	Date            time.Time     // Дата, на которую запрашивались слоты
	DurationMinutes int           // Длительность услуги
	Slots           []domain.Slot // Упорядоченный список кандидатов
}
