package get_month_availability

import "github.com/itolstov/FS-BookingService/internal/domain"

// Request модель запроса месячной занятости
type Request struct {
	Year  int // Год (любой положительный)
	Month int // Месяц (1-12)
}

// Response модель ответа: сводка занятости по дням месяца.
// Ключ - дата в формате YYYY-MM-DD; прошедшие дни отсутствуют полностью,
// а не возвращаются с нулём свободных слотов.
type Response struct {
	Days map[string]domain.DayAvailability
}
