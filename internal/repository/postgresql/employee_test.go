package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
)

var employeeRowColumns = []string{"id", "name", "registration_id", "role", "shift", "team", "vacation", "phone", "hire_date", "photo_url", "created_at", "updated_at"}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestEmployeeRepository_List(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock)
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(employeeRowColumns).
		AddRow("emp-1", "Ana Lima", "501", "Lider", "Manhã", "A1", "JULHO/2025", "11911112222", "2020", "https://example.com/a.png", now, now).
		AddRow("emp-2", "Bruno Dias", "502", "Polidor", "Noite", "C2", employee.NotInformed, "11933334444", employee.NotInformed, employee.DefaultPhotoURL, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM employees ORDER BY created_at, id`)).WillReturnRows(rows)

	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, employee.RoleLeader, employees[0].Role)
	assert.Equal(t, employee.ShiftMorning, employees[0].Shift)
	assert.Equal(t, employee.Team("C2"), employees[1].Team)
	assert.Equal(t, now, employees[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_List_Error(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock)
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta(`FROM employees`)).WillReturnError(boom)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM employees WHERE id = $1`)).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(employeeRowColumns))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock)
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO employees`)).
		WithArgs(pgxmock.AnyArg(), "Ana Lima", "501", "Lider", "Manhã", "A1", "JULHO/2025", "11911112222", employee.NotInformed, employee.DefaultPhotoURL).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), employee.Employee{
		Name:           "Ana Lima",
		RegistrationID: "501",
		Role:           employee.RoleLeader,
		Shift:          employee.ShiftMorning,
		Team:           "A1",
		Vacation:       "JULHO/2025",
		Phone:          "11911112222",
		HireDate:       employee.NotInformed,
		PhotoURL:       employee.DefaultPhotoURL,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Update(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock)
	created := time.Date(2025, time.January, 2, 8, 0, 0, 0, time.UTC)
	updated := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE employees`)).
		WithArgs("emp-1", "Ana Lima", "501", "Lider", "Noite", "A1", "JULHO/2025", "11911112222", "2020", employee.DefaultPhotoURL).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, updated))

	emp, err := repo.Update(context.Background(), employee.Employee{
		ID:             "emp-1",
		Name:           "Ana Lima",
		RegistrationID: "501",
		Role:           employee.RoleLeader,
		Shift:          employee.ShiftNight,
		Team:           "A1",
		Vacation:       "JULHO/2025",
		Phone:          "11911112222",
		HireDate:       "2020",
		PhotoURL:       employee.DefaultPhotoURL,
	})
	require.NoError(t, err)
	assert.Equal(t, updated, emp.UpdatedAt)
	assert.Equal(t, created, emp.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Update_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE employees`)).
		WithArgs("missing", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.Update(context.Background(), employee.Employee{ID: "missing"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM employees WHERE id = $1`)).
		WithArgs("emp-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM employees WHERE id = $1`)).
		WithArgs("emp-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.Delete(context.Background(), "emp-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "emp-1"), employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ExistsByRegistrationID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM employees WHERE registration_id = $1)`)).
		WithArgs("501").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByRegistrationID(context.Background(), "501")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
