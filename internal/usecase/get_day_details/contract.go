package get_day_details

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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
