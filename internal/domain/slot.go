package domain

import "fmt"

// Slot один часовой слот расписания на конкретный день.
// Доступность вычисляется на каждый запрос и нигде не хранится.
type Slot struct {
	Hour      int  // Час начала слота в локальном времени студии
	Available bool // Свободен ли слот
}

// Time возвращает время начала слота в формате "HH:00"
func (s Slot) Time() string {
	return fmt.Sprintf("%02d:00", s.Hour)
}

// DayAvailability сводка занятости одного календарного дня.
// Вычисляется заново на каждый запрос, никогда не кэшируется.
type DayAvailability struct {
	Date           string // Дата в формате YYYY-MM-DD
	AvailableSlots int
	TotalSlots     int
	BookedSlots    int
}
