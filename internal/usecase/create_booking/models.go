package create_booking

import (
	"time"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования.
// StartTime и EndTime - абсолютные моменты времени (UTC после парсинга).
type Request struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	StartTime     time.Time
	EndTime       time.Time
	Notes         *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
