package employee

import (
	"context"
)

// EmployeeService defines business logic for roster operations
type EmployeeService interface {
	// ListEmployees returns the roster filtered and decorated with vacation status
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee rejects a registration id that is already in use before writing
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee merges the provided fields into the stored record
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	DeleteEmployee(ctx context.Context, id string) error
}
