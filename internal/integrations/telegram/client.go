package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// Client клиент уведомлений студии в Telegram.
// Отправляет сообщения о создании и отмене бронирований в чат администраторов.
type Client struct {
	bot         *bot.Bot
	adminChatID int64
	loc         *time.Location
	log         Logger
}

// NewClient создает новый экземпляр клиента Telegram
func NewClient(token string, adminChatID int64, loc *time.Location, log Logger) (*Client, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create bot: %v", ErrInternal, err)
	}

	return &Client{
		bot:         b,
		adminChatID: adminChatID,
		loc:         loc,
		log:         log,
	}, nil
}

// NotifyBookingCreated уведомляет администраторов о новом бронировании.
// При недоступности Telegram возвращает ErrSendFailed: сервис логирует
// ошибку и не откатывает бронирование.
func (c *Client) NotifyBookingCreated(ctx context.Context, booking *domain.Booking) error {
	start := booking.StartTime.In(c.loc)
	end := booking.EndTime.In(c.loc)

	text := fmt.Sprintf(
		"Новое бронирование #%d\nКлиент: %s (%s)\nДата: %s\nВремя: %s - %s",
		booking.ID,
		booking.CustomerName,
		booking.CustomerPhone,
		start.Format(domain.DateFormat),
		start.Format(domain.TimeFormat),
		end.Format(domain.TimeFormat),
	)

	return c.send(ctx, text)
}

// NotifyBookingCancelled уведомляет администраторов об отмене бронирования
func (c *Client) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, reason string) error {
	start := booking.StartTime.In(c.loc)

	text := fmt.Sprintf(
		"Отмена бронирования #%d\nКлиент: %s (%s)\nДата: %s %s\nПричина: %s",
		booking.ID,
		booking.CustomerName,
		booking.CustomerPhone,
		start.Format(domain.DateFormat),
		start.Format(domain.TimeFormat),
		reason,
	)

	return c.send(ctx, text)
}

func (c *Client) send(ctx context.Context, text string) error {
	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: c.adminChatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("Telegram notification sent to chat %d", c.adminChatID)
	return nil
}
