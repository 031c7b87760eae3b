package dashboard

import (
	"sort"
	"time"

	"github.com/wmoldes/roster-backend/internal/domain/employee"
	"github.com/wmoldes/roster-backend/internal/domain/vacation"
)

// UpcomingPanelLimit caps the number of employees in the upcoming vacation panel.
const UpcomingPanelLimit = 6

// Aggregate counts the roster by vacation status and shift.
// Each employee is counted in exactly one status bucket. Shifts outside the
// known set are left out of ByShift but still count towards Total.
func Aggregate(employees []employee.Employee, now time.Time) Stats {
	stats := Stats{
		Total:   len(employees),
		ByShift: make(map[employee.Shift]int, len(employee.Shifts)),
	}
	for _, s := range employee.Shifts {
		stats.ByShift[s] = 0
	}

	for _, e := range employees {
		switch e.VacationStatus(now) {
		case vacation.StatusCurrent:
			stats.Current++
		case vacation.StatusUpcoming:
			stats.Upcoming++
		case vacation.StatusOverdue:
			stats.Overdue++
		}
		if e.Shift.Valid() {
			stats.ByShift[e.Shift]++
		}
	}
	return stats
}

// UpcomingPanel returns up to limit employees with an upcoming vacation, soonest first.
func UpcomingPanel(employees []employee.Employee, now time.Time, limit int) []employee.EmployeeResponse {
	type entry struct {
		first time.Time
		emp   employee.Employee
	}

	var upcoming []entry
	for _, e := range employees {
		if e.VacationStatus(now) != vacation.StatusUpcoming {
			continue
		}
		d, _ := vacation.Parse(e.Vacation)
		upcoming = append(upcoming, entry{first: d.FirstDay(now.Location()), emp: e})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if !upcoming[i].first.Equal(upcoming[j].first) {
			return upcoming[i].first.Before(upcoming[j].first)
		}
		return upcoming[i].emp.Name < upcoming[j].emp.Name
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	result := make([]employee.EmployeeResponse, 0, len(upcoming))
	for _, u := range upcoming {
		result = append(result, employee.NewEmployeeResponse(u.emp, now))
	}
	return result
}

// OnVacationPanel returns every employee whose vacation month is the current one.
func OnVacationPanel(employees []employee.Employee, now time.Time) []employee.EmployeeResponse {
	result := make([]employee.EmployeeResponse, 0)
	for _, e := range employees {
		if e.VacationStatus(now) == vacation.StatusCurrent {
			result = append(result, employee.NewEmployeeResponse(e, now))
		}
	}
	return result
}

// ShiftBoards groups the roster by shift in board order.
func ShiftBoards(employees []employee.Employee, now time.Time) []ShiftBoard {
	boards := make([]ShiftBoard, len(employee.Shifts))
	index := make(map[employee.Shift]int, len(employee.Shifts))
	for i, s := range employee.Shifts {
		boards[i] = ShiftBoard{Shift: s, Employees: make([]employee.EmployeeResponse, 0)}
		index[s] = i
	}

	for _, e := range employees {
		i, ok := index[e.Shift]
		if !ok {
			continue
		}
		resp := employee.NewEmployeeResponse(e, now)
		boards[i].Employees = append(boards[i].Employees, resp)
		boards[i].Count++
		if resp.VacationStatus == vacation.StatusCurrent {
			boards[i].OnVacation++
		}
	}
	return boards
}
