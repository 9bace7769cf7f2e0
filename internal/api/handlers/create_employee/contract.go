package create_employee

import (
	"context"

	"github.com/itolstov/FS-BookingService/internal/service/employees/models"
)

type EmployeeService interface {
	Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
