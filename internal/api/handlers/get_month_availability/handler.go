package get_month_availability

import (
	"net/http"
	"strconv"

	"github.com/itolstov/FS-BookingService/internal/api/handlers"
	getMonthAvailability "github.com/itolstov/FS-BookingService/internal/usecase/get_month_availability"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /month-availability
// Query params: year (required), month (required, 1-12)
//
// У эндпоинта нет 400-ответа: по контракту фронтенда любая некорректность
// параметров, как и ошибка хранилища, отдается как 500 с диагностикой.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /month-availability - Invalid year %q: %v", yearStr, err)
		handlers.RespondInternalError(w, "invalid year parameter: "+yearStr)
		return
	}

	monthStr := r.URL.Query().Get("month")
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /month-availability - Invalid month %q: %v", monthStr, err)
		handlers.RespondInternalError(w, "invalid month parameter: "+monthStr)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{
		Year:  year,
		Month: month,
	})
	if err != nil {
		h.logger.Error("GET /month-availability - Failed: year=%d, month=%d, error=%v", year, month, err)
		handlers.RespondInternalError(w, err.Error())
		return
	}

	h.logger.Info("GET /month-availability - OK: year=%d, month=%d, days=%d", year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
