package domain

import (
	"strings"
	"time"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking бронирование студии.
// StartTime и EndTime хранятся и сравниваются в UTC как абсолютные моменты времени;
// перевод в локальное время студии выполняется только при раскладке по слотам.
type Booking struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	StartTime     time.Time
	EndTime       time.Time
	Status        BookingStatus
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot сообщает, занимает ли бронирование слоты расписания.
// Сравнение статуса регистронезависимое; любой неизвестный или пустой статус
// считается занимающим слот - свободным слот делают только отмена и завершение.
func (b *Booking) OccupiesSlot() bool {
	for _, s := range NonOccupyingStatuses {
		if strings.EqualFold(string(b.Status), string(s)) {
			return false
		}
	}
	return true
}

// CanBeCancelled сообщает, может ли бронирование быть отменено
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// LocalInterval возвращает интервал бронирования в локальном времени студии.
// Бронирование с нулевой или отрицательной длительностью не отбрасывается,
// а приводится к ровно одному часу от локального начала.
func (b *Booking) LocalInterval(loc *time.Location) (start, end time.Time) {
	start = b.StartTime.In(loc)
	end = b.EndTime.In(loc)
	if !end.After(start) {
		end = start.Add(time.Hour)
	}
	return start, end
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	From            *time.Time     // Начало периода (опционально)
	To              *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и завершённые бронирования
}
