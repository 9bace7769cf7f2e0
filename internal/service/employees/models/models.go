package models

import (
	"time"

	"github.com/itolstov/FS-BookingService/internal/domain"
)

// CreateEmployeeRequest запрос на создание сотрудника
type CreateEmployeeRequest struct {
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateEmployeeRequest) ToDomain() *domain.Employee {
	return &domain.Employee{
		FullName: r.FullName,
		Role:     r.Role,
		Phone:    r.Phone,
		IsActive: true,
	}
}

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeeListResponse ответ со списком сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// FromDomainEmployee конвертирует domain модель в DTO
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}

	return &EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		Role:      e.Role,
		Phone:     e.Phone,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// FromDomainEmployeeList конвертирует список domain моделей в DTO
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	resp := &EmployeeListResponse{
		Employees: make([]EmployeeResponse, 0, len(employees)),
	}

	for _, employee := range employees {
		if employeeResp := FromDomainEmployee(employee); employeeResp != nil {
			resp.Employees = append(resp.Employees, *employeeResp)
		}
	}

	return resp
}
