package catalogservice

// ServiceVariation модель вариации услуги из каталога.
// DurationMinutes читается в момент создания бронирования, не кэшируется.
type ServiceVariation struct {
	ID              int64   `json:"id"`
	ServiceID       int64   `json:"service_id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

// Service модель услуги из каталога
type Service struct {
	ID         int64  `json:"id"`
	ProviderID int64  `json:"provider_id"`
	Title      string `json:"title"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
