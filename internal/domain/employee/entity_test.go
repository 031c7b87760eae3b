package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wmoldes/roster-backend/internal/domain/vacation"
)

func TestEmployee_Apply(t *testing.T) {
	e := Employee{
		ID:             "emp-1",
		Name:           "João",
		RegistrationID: "100",
		Role:           RoleLeader,
		Shift:          ShiftMorning,
		Team:           "A1",
		Vacation:       "JULHO/2025",
		Phone:          "11999990000",
		HireDate:       "01/02/2020",
		PhotoURL:       "https://example.com/joao.png",
	}

	night := string(ShiftNight)
	blank := ""
	e.Apply(UpdateEmployeeRequest{ID: "emp-1", Shift: &night, Vacation: &blank})

	assert.Equal(t, ShiftNight, e.Shift)
	assert.Equal(t, NotInformed, e.Vacation)
	assert.Equal(t, "João", e.Name)
	assert.Equal(t, RoleLeader, e.Role)
	assert.Equal(t, "https://example.com/joao.png", e.PhotoURL)
}

func TestEmployee_WhatsAppURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/5511987654321", Employee{Phone: "(11) 98765-4321"}.WhatsAppURL())
	assert.Equal(t, "", Employee{Phone: "sem telefone"}.WhatsAppURL())
}

func TestEmployee_VacationStatus(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, vacation.StatusCurrent, Employee{Vacation: "JUNHO/2025"}.VacationStatus(now))
	assert.Equal(t, vacation.StatusUnspecified, Employee{Vacation: NotInformed}.VacationStatus(now))
}

func TestShift_Valid(t *testing.T) {
	assert.True(t, ShiftMorning.Valid())
	assert.False(t, Shift("Madrugada").Valid())
}
