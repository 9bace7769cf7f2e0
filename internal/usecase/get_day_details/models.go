package get_day_details

import (
	"time"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// Request модель запроса детализации дня
type Request struct {
	Date time.Time // Запрошенная дата (без времени)
}

// Response модель ответа: все слоты запрошенного дня по возрастанию часа.
// В отличие от месячной сводки прошедшие даты не отсекаются -
// детализацию можно запросить и для прошедшего дня.
type Response struct {
	Date  time.Time
	Slots []domain.Slot
}
