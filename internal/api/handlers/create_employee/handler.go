package create_employee

import (
	"errors"
	"net/http"

	"github.com/itolstov/FS-BookingService/internal/api/handlers"
	"github.com/itolstov/FS-BookingService/internal/service/employees"
	"github.com/itolstov/FS-BookingService/internal/service/employees/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, employees.ErrInvalidInput):
			h.logger.Warn("POST /employees - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /employees - Failed to create employee: %v", err)
			handlers.RespondInternalError(w, err.Error())
		}
		return
	}

	h.logger.Info("POST /employees - Employee created successfully: employee_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
