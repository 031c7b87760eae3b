package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
)

var midJune = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func roster() []employee.Employee {
	return []employee.Employee{
		{Name: "Ana", RegistrationID: "1", Shift: employee.ShiftMorning, Vacation: "JUNHO/2025"},
		{Name: "Bruno", RegistrationID: "2", Shift: employee.ShiftMorning, Vacation: "AGOSTO/2025"},
		{Name: "Carla", RegistrationID: "3", Shift: employee.ShiftAfternoon, Vacation: "JULHO/2025"},
		{Name: "Diego", RegistrationID: "4", Shift: employee.ShiftNight, Vacation: "MAIO/2025"},
		{Name: "Elisa", RegistrationID: "5", Shift: employee.ShiftNight, Vacation: employee.NotInformed},
		{Name: "Fábio", RegistrationID: "6", Shift: "Madrugada", Vacation: "SETEMBRO/2025"},
	}
}

func TestAggregate(t *testing.T) {
	stats := Aggregate(roster(), midJune)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 1, stats.Current)
	assert.Equal(t, 2, stats.Upcoming)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, map[employee.Shift]int{
		employee.ShiftMorning:   2,
		employee.ShiftAfternoon: 1,
		employee.ShiftNight:     2,
	}, stats.ByShift)
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil, midJune)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Current)
	assert.Equal(t, 0, stats.Upcoming)
	assert.Equal(t, 0, stats.Overdue)
	assert.Equal(t, map[employee.Shift]int{
		employee.ShiftMorning:   0,
		employee.ShiftAfternoon: 0,
		employee.ShiftNight:     0,
	}, stats.ByShift)
}

func TestAggregate_Idempotent(t *testing.T) {
	list := roster()
	first := Aggregate(list, midJune)
	second := Aggregate(list, midJune)

	assert.Equal(t, first, second)
	assert.Equal(t, roster(), list)
}

func TestAggregate_StatusCountsNeverExceedTotal(t *testing.T) {
	for _, now := range []time.Time{
		midJune,
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC),
	} {
		stats := Aggregate(roster(), now)
		assert.LessOrEqual(t, stats.Current+stats.Upcoming+stats.Overdue, stats.Total)
	}
}

func TestUpcomingPanel(t *testing.T) {
	panel := UpcomingPanel(roster(), midJune, UpcomingPanelLimit)

	require.Len(t, panel, 2)
	assert.Equal(t, "Carla", panel[0].Name)
	assert.Equal(t, "Bruno", panel[1].Name)
	assert.Equal(t, "Próxima", panel[0].StatusLabel)
}

func TestUpcomingPanel_Limit(t *testing.T) {
	var list []employee.Employee
	for i := 0; i < 10; i++ {
		list = append(list, employee.Employee{Name: string(rune('A' + i)), Shift: employee.ShiftAfternoon, Vacation: "JULHO/2025"})
	}

	panel := UpcomingPanel(list, midJune, UpcomingPanelLimit)
	require.Len(t, panel, UpcomingPanelLimit)
	assert.Equal(t, "A", panel[0].Name)
}

func TestOnVacationPanel(t *testing.T) {
	panel := OnVacationPanel(roster(), midJune)

	require.Len(t, panel, 1)
	assert.Equal(t, "Ana", panel[0].Name)
	assert.Equal(t, "badge-success", panel[0].BadgeStyle)
}

func TestShiftBoards(t *testing.T) {
	boards := ShiftBoards(roster(), midJune)

	require.Len(t, boards, 3)
	assert.Equal(t, employee.ShiftMorning, boards[0].Shift)
	assert.Equal(t, 2, boards[0].Count)
	assert.Equal(t, 1, boards[0].OnVacation)
	assert.Equal(t, employee.ShiftAfternoon, boards[1].Shift)
	assert.Equal(t, 0, boards[1].OnVacation)
	assert.Equal(t, employee.ShiftNight, boards[2].Shift)
	assert.Len(t, boards[2].Employees, 2)
}
