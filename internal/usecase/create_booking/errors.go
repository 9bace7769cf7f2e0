package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrDateInPast возвращается при попытке бронирования на прошедшее время
	ErrDateInPast = errors.New("booking time is in the past")

	// ErrOutsideWorkingHours возвращается, когда интервал выходит за сетку слотов
	ErrOutsideWorkingHours = errors.New("booking is outside working hours")

	// ErrSlotConflict возвращается, когда интервал пересекается с активным бронированием
	ErrSlotConflict = errors.New("time slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
