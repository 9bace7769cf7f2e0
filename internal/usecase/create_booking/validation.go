package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidInput)
	}
	return nil
}

// validateInterval проверяет интервал бронирования относительно сетки слотов.
// Бронирование должно начинаться в будущем, лежать внутри одного локального
// дня и укладываться в рабочие часы студии.
func validateInterval(req *Request, now time.Time, grid domain.SlotGrid) error {
	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidTimeRange)
	}

	if !req.StartTime.After(now) {
		return ErrDateInPast
	}

	localStart := req.StartTime.In(grid.Location)
	localEnd := req.EndTime.In(grid.Location)

	sameDay := localStart.Year() == localEnd.Year() &&
		localStart.YearDay() == localEnd.YearDay()
	// Бронирование до конца последнего слота (localEnd ровно в полночь
	// следующего дня сетка не покрывает, поэтому отдельный случай не нужен)
	if !sameDay {
		return fmt.Errorf("%w: booking must not cross midnight", ErrInvalidTimeRange)
	}

	if !grid.ContainsHour(localStart.Hour()) {
		return fmt.Errorf("%w: start hour %02d:00 is outside the slot grid", ErrOutsideWorkingHours, localStart.Hour())
	}

	closeTime := time.Date(localStart.Year(), localStart.Month(), localStart.Day(),
		grid.LastSlotHour+1, 0, 0, 0, grid.Location)
	if localEnd.After(closeTime) {
		return fmt.Errorf("%w: booking ends after closing time", ErrOutsideWorkingHours)
	}

	return nil
}
