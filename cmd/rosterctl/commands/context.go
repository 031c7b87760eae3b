package commands

import (
	"context"

	"github.com/wmoldes/roster-backend/internal/domain/dashboard"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
	"github.com/wmoldes/roster-backend/internal/domain/export"
)

// AppContext holds the services shared by every command
type AppContext struct {
	Ctx       context.Context
	Employees employee.EmployeeService
	Dashboard dashboard.DashboardService
	Export    export.ExportService
}
