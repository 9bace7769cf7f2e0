package telegram

import (
	"context"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// NopNotifier заглушка уведомлений: используется, когда Telegram
// выключен в конфигурации
type NopNotifier struct{}

// NotifyBookingCreated ничего не делает
func (NopNotifier) NotifyBookingCreated(_ context.Context, _ *domain.Booking) error {
	return nil
}

// NotifyBookingCancelled ничего не делает
func (NopNotifier) NotifyBookingCancelled(_ context.Context, _ *domain.Booking, _ string) error {
	return nil
}
