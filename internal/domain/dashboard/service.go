package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns stats and the vacation panels
	GetDashboard(ctx context.Context) (*DashboardResponse, error)

	// GetShiftBoards returns the roster grouped by shift
	GetShiftBoards(ctx context.Context) ([]ShiftBoard, error)
}
