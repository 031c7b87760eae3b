package dashboard

import "github.com/wmoldes/roster-backend/internal/domain/employee"

// Stats summarizes the roster at a point in time.
type Stats struct {
	Total    int                    `json:"total"`
	Current  int                    `json:"current"`
	Upcoming int                    `json:"upcoming"`
	Overdue  int                    `json:"overdue"`
	ByShift  map[employee.Shift]int `json:"by_shift"`
}

// ShiftBoard is one column of the shift board.
type ShiftBoard struct {
	Shift      employee.Shift              `json:"shift"`
	Count      int                         `json:"count"`
	OnVacation int                         `json:"on_vacation"`
	Employees  []employee.EmployeeResponse `json:"employees"`
}

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Stats       Stats                       `json:"stats"`
	Upcoming    []employee.EmployeeResponse `json:"upcoming"`
	OnVacation  []employee.EmployeeResponse `json:"on_vacation"`
	GeneratedAt string                      `json:"generated_at"`
}
