package get_day_details

import (
	"context"
	"fmt"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// UseCase use case детализации одного дня: доступность каждого слота
// фиксированной сетки на запрошенную дату
type UseCase struct {
	bookingRepo BookingRepository
	grid        domain.SlotGrid
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, grid domain.SlotGrid, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		grid:        grid,
		logger:      logger,
	}
}

// Execute выполняет use case детализации дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayDetails: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация даты
	if req.Date.IsZero() {
		uc.logger.Warn("GetDayDetails: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	// 2. Окно дня в локальном времени студии:
	// [локальная полночь даты, локальная полночь следующего дня)
	year, month, day := req.Date.Date()
	dayStart, dayEnd := uc.grid.DayWindow(year, month, day)

	// 3. Получаем пересекающиеся бронирования по UTC-границам окна
	bookings, err := uc.bookingRepo.GetOverlapping(ctx, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		uc.logger.Error("GetDayDetails: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Помечаем занятые слоты пересечением интервалов
	slots := buildSlots(year, month, day, bookings, uc.grid)

	uc.logger.Info("GetDayDetails: date=%s, bookings=%d, slots=%d",
		req.Date.Format(domain.DateFormat), len(bookings), len(slots))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
