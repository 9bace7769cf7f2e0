package get_day_details

import (
	"net/http"
	"time"

	"github.com/itolstov/FS-BookingService/internal/api/handlers"
	"github.com/itolstov/FS-BookingService/internal/domain"
	getDayDetails "github.com/itolstov/FS-BookingService/internal/usecase/get_day_details"
)

type Handler struct {
	useCase GetDayDetailsUseCase
	logger  Logger
}

func NewHandler(useCase GetDayDetailsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /day-details
// Query params: date (required, YYYY-MM-DD)
//
// Прошедшие даты не отклоняются: детализация возвращается и для них.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /day-details - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, "Invalid date format: "+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayDetails.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /day-details - Failed: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w, err.Error())
		return
	}

	h.logger.Info("GET /day-details - OK: date=%s, slots=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
