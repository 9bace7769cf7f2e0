package employees

import (
	"context"
	"fmt"
	"strings"

	"github.com/itolstov/FS-BookingService/internal/service/employees/models"
)

// Service сервис для работы с сотрудниками студии
type Service struct {
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(employeeRepo EmployeeRepository, logger Logger) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Create создает нового сотрудника
func (s *Service) Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Create: creating employee name=%s, role=%s", req.FullName, req.Role)

	if strings.TrimSpace(req.FullName) == "" {
		s.logger.Warn("Create: employee name is required")
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Role) == "" {
		s.logger.Warn("Create: employee role is required")
		return nil, fmt.Errorf("%w: role is required", ErrInvalidInput)
	}

	employee, err := s.employeeRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: employee id=%d created successfully", employee.ID)
	return models.FromDomainEmployee(employee), nil
}

// List получает список сотрудников
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.EmployeeListResponse, error) {
	s.logger.Info("List: fetching employees, onlyActive=%v", onlyActive)

	employees, err := s.employeeRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d employees", len(employees))
	return models.FromDomainEmployeeList(employees), nil
}
