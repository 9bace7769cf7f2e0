package get_month_availability

import (
	"time"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// collectBookedHours раскладывает бронирования по занятым часам каждого
// локального дня. Возвращает map "YYYY-MM-DD" -> множество занятых часов.
//
// Алгоритм месячной сводки: интервал бронирования обходится целыми локальными
// часами от начала, усечённого до часа, до локального конца (не включая его).
// Часы за пределами сетки игнорируются. Это исторический контракт месячной
// выдачи; дневная детализация считает занятость честным пересечением
// интервалов (см. get_day_details).
func collectBookedHours(bookings []*domain.Booking, grid domain.SlotGrid) map[string]map[int]struct{} {
	booked := make(map[string]map[int]struct{})

	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}

		start, end := b.LocalInterval(grid.Location)

		for hour := truncateToHour(start); hour.Before(end); hour = hour.Add(time.Hour) {
			if !grid.ContainsHour(hour.Hour()) {
				continue
			}

			dateKey := hour.Format(domain.DateFormat)
			if booked[dateKey] == nil {
				booked[dateKey] = make(map[int]struct{})
			}
			booked[dateKey][hour.Hour()] = struct{}{}
		}
	}

	return booked
}

// buildDays строит сводку по всем дням месяца начиная с "сегодня".
// Дни строго раньше сегодняшней локальной даты в результат не попадают.
func buildDays(
	year int,
	month time.Month,
	today time.Time,
	booked map[string]map[int]struct{},
	grid domain.SlotGrid,
) map[string]domain.DayAvailability {
	days := make(map[string]domain.DayAvailability)

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, grid.Location)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, grid.Location)
		if date.Before(today) {
			continue
		}

		dateKey := date.Format(domain.DateFormat)
		bookedSlots := len(booked[dateKey])
		availableSlots := grid.TotalSlots() - bookedSlots
		if availableSlots < 0 {
			availableSlots = 0
		}

		days[dateKey] = domain.DayAvailability{
			Date:           dateKey,
			TotalSlots:     grid.TotalSlots(),
			BookedSlots:    bookedSlots,
			AvailableSlots: availableSlots,
		}
	}

	return days
}

// truncateToHour усекает локальное время до начала часа
func truncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
