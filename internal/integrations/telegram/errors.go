package telegram

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("telegram client: internal error")

	// ErrSendFailed возвращается, когда сообщение не удалось отправить.
	// Уведомления не критичны для бронирования: вызывающая сторона логирует
	// ошибку и продолжает работу.
	ErrSendFailed = errors.New("telegram client: failed to send message")
)
