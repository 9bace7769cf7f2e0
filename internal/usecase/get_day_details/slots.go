package get_day_details

import (
	"time"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// buildSlots строит все слоты сетки на запрошенный день и помечает занятые.
//
// Слот часа h занят, если его локальный интервал [h:00, h+1:00) строго
// пересекает локальный интервал бронирования [start, end):
// slotStart < bookingEnd AND slotEnd > bookingStart.
// Граничащие интервалы (бронирование заканчивается ровно в начале слота
// или начинается ровно в его конце) пересечением не считаются.
//
// Это честное пересечение интервалов - более точный из двух алгоритмов
// занятости; месячная сводка обходит интервал целыми часами
// (см. get_month_availability). Оба поведения сохраняются намеренно.
func buildSlots(
	year int,
	month time.Month,
	day int,
	bookings []*domain.Booking,
	grid domain.SlotGrid,
) []domain.Slot {
	bookedHours := make(map[int]struct{})

	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}

		bookingStart, bookingEnd := b.LocalInterval(grid.Location)

		for _, hour := range grid.Hours() {
			slotStart := time.Date(year, month, day, hour, 0, 0, 0, grid.Location)
			slotEnd := slotStart.Add(time.Hour)

			if slotStart.Before(bookingEnd) && slotEnd.After(bookingStart) {
				bookedHours[hour] = struct{}{}
			}
		}
	}

	slots := make([]domain.Slot, 0, grid.TotalSlots())
	for _, hour := range grid.Hours() {
		_, booked := bookedHours[hour]
		slots = append(slots, domain.Slot{
			Hour:      hour,
			Available: !booked,
		})
	}

	return slots
}
