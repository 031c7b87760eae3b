package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wmoldes/roster-backend/internal/domain/employee"
	"github.com/wmoldes/roster-backend/internal/pkg/clock"
	"github.com/wmoldes/roster-backend/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	tx           database.Transactor
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewEmployeeService(
	tx database.Transactor,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	now := s.clock.Now()
	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		if filter.Match(e, now) {
			result = append(result, employee.NewEmployeeResponse(e, now))
		}
	}
	return result, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("get employee: %w", err)
	}
	return employee.NewEmployeeResponse(e, s.clock.Now()), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.employeeRepo.ExistsByRegistrationID(ctx, req.RegistrationID)
		if err != nil {
			return fmt.Errorf("check registration id: %w", err)
		}
		if exists {
			return employee.ErrRegistrationIDExists
		}

		created, err = s.employeeRepo.Create(ctx, req.ToEmployee())
		if err != nil {
			return fmt.Errorf("create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "employee_id", created.ID, "registration_id", created.RegistrationID)
	return employee.NewEmployeeResponse(created, s.clock.Now()), nil
}

// UpdateEmployee implements employee.EmployeeService.
// Registration ids are not re-checked for uniqueness on update.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		current, err := s.employeeRepo.GetByID(ctx, req.ID)
		if err != nil {
			return fmt.Errorf("get employee: %w", err)
		}

		current.Apply(req)
		updated, err = s.employeeRepo.Update(ctx, current)
		if err != nil {
			return fmt.Errorf("update employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee updated", "employee_id", updated.ID)
	return employee.NewEmployeeResponse(updated, s.clock.Now()), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	slog.Info("Employee deleted", "employee_id", id)
	return nil
}
