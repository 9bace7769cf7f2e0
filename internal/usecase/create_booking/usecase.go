package create_booking

import (
	"context"
	"fmt"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     Notifier
	grid         domain.SlotGrid
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	grid domain.SlotGrid,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifier,
		grid:         grid,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и вставка выполняются в сериализуемой транзакции,
// чтобы два конкурентных запроса не заняли один слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, start=%s, end=%s",
		req.CustomerPhone, req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация интервала относительно сетки слотов
	now := uc.timeProvider.Now()
	if err := validateInterval(req, now, uc.grid); err != nil {
		uc.logger.Warn("CreateBooking: interval validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Проверяем пересечения и создаем бронирование в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.StartTime.UTC(), req.EndTime.UTC())
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		// Отменённые и завершённые бронирования слот не занимают
		for _, b := range overlapping {
			if b.OccupiesSlot() {
				uc.logger.Warn("CreateBooking: slot conflict with booking id=%d", b.ID)
				return ErrSlotConflict
			}
		}

		booking := &domain.Booking{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			StartTime:     req.StartTime.UTC(),
			EndTime:       req.EndTime.UTC(),
			Status:        domain.StatusPending,
			Notes:         req.Notes,
		}

		result, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Уведомляем администраторов; недоступность Telegram бронирование не ломает
	if err := uc.notifier.NotifyBookingCreated(ctx, result); err != nil {
		uc.logger.Error("CreateBooking: notification failed for booking id=%d: %v", result.ID, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d created successfully", result.ID)
	return &Response{Booking: result}, nil
}
