package domain

// Значения сетки слотов по умолчанию: студия бронируется
// почасово с 9:00 до 21:00 локального времени (12 слотов в день)
const (
	DefaultOpenHour     = 9
	DefaultLastSlotHour = 20
	DefaultTimezone     = "Europe/Moscow"
)

// Ограничения бизнес-валидации
const (
	MaxCustomerNameLength       = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// NonOccupyingStatuses статусы, НЕ занимающие слоты расписания.
// Используется при подсчёте занятости; сравнение регистронезависимое.
var NonOccupyingStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// ActiveStatuses статусы активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}
