package domain

import "time"

// Employee сотрудник студии (администратор, фотограф, ретушёр)
type Employee struct {
	ID       int64
	FullName string
	Role     string
	Phone    string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
