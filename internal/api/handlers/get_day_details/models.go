package get_day_details

import (
	"github.com/itolstov/FS-BookingService/internal/domain"
	getDayDetails "github.com/itolstov/FS-BookingService/internal/usecase/get_day_details"
)

// DayDetailsResponse HTTP response model.
// Имена полей зафиксированы контрактом фронтенда.
type DayDetailsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Slot модель слота: время начала "HH:00" и доступность
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayDetails.Response) *DayDetailsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:      slot.Time(),
			Available: slot.Available,
		}
	}

	return &DayDetailsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
