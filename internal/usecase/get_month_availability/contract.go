package get_month_availability

import (
	"context"
	"time"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOverlapping получает все бронирования, чей интервал [start_time, end_time)
	// строго пересекает окно [from, to] в UTC
	GetOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования).
// Отсечение прошедших дней зависит от "сегодня", поэтому часы инжектируются,
// а не читаются внутри расчёта.
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
