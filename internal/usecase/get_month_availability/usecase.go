package get_month_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// UseCase use case месячной сводки занятости: для каждого дня месяца
// считает количество свободных и занятых слотов фиксированной сетки
type UseCase struct {
	bookingRepo  BookingRepository
	grid         domain.SlotGrid
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, grid domain.SlotGrid, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		grid:         grid,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения месячной занятости.
// Операция только читает хранилище: один запрос бронирований на окно месяца,
// полный результат или полная ошибка, без кэширования между запросами.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: year=%d, month=%d", req.Year, req.Month)

	// 1. Валидация периода
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	month := time.Month(req.Month)

	// 2. Окно месяца в локальном времени студии: от полуночи первого числа
	// до последней секунды последнего дня включительно
	monthStart, monthEnd := uc.grid.MonthWindow(req.Year, month)

	// 3. Получаем пересекающиеся бронирования; границы окна переводятся в UTC,
	// т.к. хранилище оперирует UTC-метками
	bookings, err := uc.bookingRepo.GetOverlapping(ctx, monthStart.UTC(), monthEnd.UTC())
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Раскладываем бронирования по занятым часам локальных дней
	booked := collectBookedHours(bookings, uc.grid)

	// 5. Строим сводку по дням, отсекая дни раньше сегодняшней локальной даты
	today := uc.grid.Today(uc.timeProvider.Now())
	days := buildDays(req.Year, month, today, booked, uc.grid)

	uc.logger.Info("GetMonthAvailability: year=%d, month=%d, bookings=%d, days=%d",
		req.Year, req.Month, len(bookings), len(days))

	return &Response{Days: days}, nil
}
