package list_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/itolstov/FS-BookingService/internal/domain"
	"github.com/itolstov/FS-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров.
// from/to - даты YYYY-MM-DD; границы периода трактуются включительно.
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %v", err)
		}
		req.From = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %v", err)
		}
		// Конец периода - последняя секунда указанного дня
		to = to.AddDate(0, 0, 1).Add(-time.Second)
		req.To = &to
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
