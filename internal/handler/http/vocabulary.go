package http

import (
	"net/http"

	"github.com/wmoldes/roster-backend/internal/domain/employee"
	"github.com/wmoldes/roster-backend/internal/domain/vacation"
	"github.com/wmoldes/roster-backend/internal/handler/http/response"
)

// VocabularyResponse lists the values clients use to build forms and filters.
type VocabularyResponse struct {
	Shifts             []employee.Shift          `json:"shifts"`
	Roles              []employee.Role           `json:"roles"`
	Teams              []employee.Team           `json:"teams"`
	Months             []string                  `json:"months"`
	VacationFilters    []employee.VacationFilter `json:"vacation_filters"`
	UpcomingWindowDays int                       `json:"upcoming_window_days"`
	NotInformed        string                    `json:"not_informed"`
	FilterAll          string                    `json:"filter_all"`
}

func Vocabulary(w http.ResponseWriter, r *http.Request) {
	response.Success(w, VocabularyResponse{
		Shifts: employee.Shifts,
		Roles:  employee.Roles,
		Teams:  employee.Teams,
		Months: vacation.MonthNames,
		VacationFilters: []employee.VacationFilter{
			employee.VacationFilterAll,
			employee.VacationFilterOnVacation,
			employee.VacationFilterUpcoming,
			employee.VacationFilterOverdue,
			employee.VacationFilterThisMonth,
			employee.VacationFilterNotInformed,
		},
		UpcomingWindowDays: vacation.UpcomingWindowDays,
		NotInformed:        vacation.NotInformed,
		FilterAll:          employee.FilterAll,
	})
}
