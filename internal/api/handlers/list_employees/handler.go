package list_employees

import (
	"net/http"

	"github.com/itolstov/FS-BookingService/internal/api/handlers"
)

type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees
// Query params: onlyActive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /employees - Failed to list employees: %v", err)
		handlers.RespondInternalError(w, err.Error())
		return
	}

	h.logger.Info("GET /employees - Employees retrieved successfully: count=%d", len(result.Employees))
	handlers.RespondJSON(w, http.StatusOK, result)
}
