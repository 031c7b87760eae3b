package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmoldes/roster-backend/internal/domain/dashboard"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
)

const seedYAML = `
employees:
  - name: Ana Lima
    registration_id: "501"
    role: Lider
    shift: Manhã
    team: A1
    vacation: JULHO/2025
    phone: "11911112222"
  - name: Bruno Dias
    registration_id: "502"
    role: Polidor
    shift: Noite
    team: C3
    phone: "11933334444"
`

type seedService struct {
	employee.EmployeeService
	existing map[string]bool
	fail     string
}

func (s *seedService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if req.RegistrationID == s.fail {
		return employee.EmployeeResponse{}, errors.New("connection reset")
	}
	if s.existing[req.RegistrationID] {
		return employee.EmployeeResponse{}, employee.ErrRegistrationIDExists
	}
	s.existing[req.RegistrationID] = true
	return employee.EmployeeResponse{Name: req.Name}, nil
}

func TestParseSeed(t *testing.T) {
	reqs, err := parseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.Equal(t, "Ana Lima", reqs[0].Name)
	assert.Equal(t, "501", reqs[0].RegistrationID)
	assert.Equal(t, "Manhã", reqs[0].Shift)
	assert.Equal(t, "JULHO/2025", reqs[0].Vacation)
	assert.Empty(t, reqs[1].Vacation)

	_, err = parseSeed(strings.NewReader("employees: ["))
	assert.Error(t, err)
}

func TestSeedEmployees_SkipsDuplicates(t *testing.T) {
	reqs, err := parseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)

	svc := &seedService{existing: map[string]bool{"502": true}}
	app := &AppContext{Ctx: context.Background(), Employees: svc}

	var out bytes.Buffer
	created, skipped, err := seedEmployees(app, reqs, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, skipped)
	assert.Contains(t, out.String(), "Bruno Dias (502) already registered")
}

func TestSeedEmployees_StopsOnStoreError(t *testing.T) {
	reqs, err := parseSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)

	svc := &seedService{existing: map[string]bool{}, fail: "501"}
	app := &AppContext{Ctx: context.Background(), Employees: svc}

	created, _, err := seedEmployees(app, reqs, &bytes.Buffer{})
	assert.ErrorContains(t, err, "connection reset")
	assert.Zero(t, created)
}

func TestWriteStats(t *testing.T) {
	var out bytes.Buffer
	writeStats(&out, &dashboard.DashboardResponse{
		Stats: dashboard.Stats{
			Total:    4,
			Current:  1,
			Upcoming: 2,
			ByShift:  map[employee.Shift]int{employee.ShiftMorning: 3, employee.ShiftAfternoon: 1, employee.ShiftNight: 0},
		},
		Upcoming: []employee.EmployeeResponse{{Name: "Ana", RegistrationID: "501", Vacation: "JULHO/2025"}},
	})

	text := out.String()
	assert.Contains(t, text, "Total:       4")
	assert.Contains(t, text, "Upcoming:    2")
	assert.Contains(t, text, "Noite")
	assert.Contains(t, text, "Ana (501) - JULHO/2025")
}
