package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/wmoldes/roster-backend/internal/domain/dashboard"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
	"github.com/wmoldes/roster-backend/internal/pkg/clock"
)

type DashboardServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewDashboardService(employeeRepo employee.EmployeeRepository, clk clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// GetDashboard classifies the whole roster once against a single "now".
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	now := s.clock.Now()
	return &dashboard.DashboardResponse{
		Stats:       dashboard.Aggregate(employees, now),
		Upcoming:    dashboard.UpcomingPanel(employees, now, dashboard.UpcomingPanelLimit),
		OnVacation:  dashboard.OnVacationPanel(employees, now),
		GeneratedAt: now.Format(time.RFC3339),
	}, nil
}

// GetShiftBoards implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetShiftBoards(ctx context.Context) ([]dashboard.ShiftBoard, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return dashboard.ShiftBoards(employees, s.clock.Now()), nil
}
