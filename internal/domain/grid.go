package domain

import "time"

// SlotGrid фиксированная сетка почасовых слотов студии.
// Передается в use cases явным значением, а не глобальной константой:
// расчёт занятости остается чистым и тестируемым с любой сеткой.
type SlotGrid struct {
	OpenHour     int            // Час первого слота (включительно), локальное время
	LastSlotHour int            // Час последнего слота (включительно), локальное время
	Location     *time.Location // Часовой пояс студии
}

// NewSlotGrid создает сетку слотов студии
func NewSlotGrid(openHour, lastSlotHour int, loc *time.Location) SlotGrid {
	return SlotGrid{
		OpenHour:     openHour,
		LastSlotHour: lastSlotHour,
		Location:     loc,
	}
}

// TotalSlots возвращает количество слотов в дне
func (g SlotGrid) TotalSlots() int {
	return g.LastSlotHour - g.OpenHour + 1
}

// ContainsHour сообщает, входит ли час в бронируемую сетку.
// Часы бронирования за пределами сетки просто не учитываются в занятости.
func (g SlotGrid) ContainsHour(hour int) bool {
	return hour >= g.OpenHour && hour <= g.LastSlotHour
}

// Hours возвращает все часы сетки по возрастанию
func (g SlotGrid) Hours() []int {
	hours := make([]int, 0, g.TotalSlots())
	for h := g.OpenHour; h <= g.LastSlotHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// DayWindow возвращает границы локального дня: [локальная полночь date,
// локальная полночь следующего дня)
func (g SlotGrid) DayWindow(year int, month time.Month, day int) (start, end time.Time) {
	start = time.Date(year, month, day, 0, 0, 0, 0, g.Location)
	end = start.AddDate(0, 0, 1)
	return start, end
}

// MonthWindow возвращает границы локального месяца: от локальной полуночи
// первого числа до последней секунды последнего дня включительно
func (g SlotGrid) MonthWindow(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, g.Location)
	end = start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// Today возвращает локальную дату (без времени) для переданного момента
func (g SlotGrid) Today(now time.Time) time.Time {
	local := now.In(g.Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, g.Location)
}
