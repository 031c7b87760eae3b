package export

import (
	"context"

	"github.com/wmoldes/roster-backend/internal/domain/employee"
)

type ExportService interface {
	// Export renders the filtered roster in the requested format
	Export(ctx context.Context, format Format, filter employee.EmployeeFilter) (*File, error)
}
