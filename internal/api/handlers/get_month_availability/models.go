package get_month_availability

import (
	getMonthAvailability "github.com/itolstov/FS-BookingService/internal/usecase/get_month_availability"
)

// DayAvailability сводка занятости одного дня.
// Имена полей в snake_case зафиксированы контрактом фронтенда.
type DayAvailability struct {
	AvailableSlots int `json:"available_slots"`
	TotalSlots     int `json:"total_slots"`
	BookedSlots    int `json:"booked_slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response:
// плоский объект, ключ - дата YYYY-MM-DD
func FromUseCaseResponse(resp *getMonthAvailability.Response) map[string]DayAvailability {
	result := make(map[string]DayAvailability, len(resp.Days))
	for date, day := range resp.Days {
		result[date] = DayAvailability{
			AvailableSlots: day.AvailableSlots,
			TotalSlots:     day.TotalSlots,
			BookedSlots:    day.BookedSlots,
		}
	}
	return result
}
