package employee

import (
	"strings"
	"time"

	"github.com/wmoldes/roster-backend/internal/domain/vacation"
	"github.com/wmoldes/roster-backend/internal/pkg/validator"
	"golang.org/x/text/cases"
)

type CreateEmployeeRequest struct {
	Name           string `json:"name" validate:"required,max=120"`
	RegistrationID string `json:"registration_id" validate:"required,max=30"`
	Role           string `json:"role" validate:"required,oneof=Lider Ajustador Ajustador/Soldador Polidor Carregador/Foscador Vertech"`
	Shift          string `json:"shift" validate:"required,oneof=Manhã Tarde Noite"`
	Team           string `json:"team" validate:"required,oneof=A1 A2 A3 A4 B1 B2 B3 B4 C1 C2 C3 C4 Diaria"`
	Vacation       string `json:"vacation"`
	Phone          string `json:"phone" validate:"required,max=30"`
	HireDate       string `json:"hire_date"`
	PhotoURL       string `json:"photo_url"`
}

// Validate trims every field and checks required values and vocabularies.
func (r *CreateEmployeeRequest) Validate() error {
	for _, f := range []*string{&r.Name, &r.RegistrationID, &r.Role, &r.Shift, &r.Team, &r.Vacation, &r.Phone, &r.HireDate, &r.PhotoURL} {
		*f = strings.TrimSpace(*f)
	}
	return validator.Struct(r)
}

// ToEmployee builds the record to store, with defaults applied.
func (r CreateEmployeeRequest) ToEmployee() Employee {
	e := Employee{
		Name:           r.Name,
		RegistrationID: r.RegistrationID,
		Role:           Role(r.Role),
		Shift:          Shift(r.Shift),
		Team:           Team(r.Team),
		Vacation:       r.Vacation,
		Phone:          r.Phone,
		HireDate:       r.HireDate,
		PhotoURL:       r.PhotoURL,
	}
	e.ApplyDefaults()
	return e
}

type UpdateEmployeeRequest struct {
	ID             string  `json:"-"`
	Name           *string `json:"name,omitempty" validate:"omitempty,max=120"`
	RegistrationID *string `json:"registration_id,omitempty" validate:"omitempty,max=30"`
	Role           *string `json:"role,omitempty" validate:"omitempty,oneof=Lider Ajustador Ajustador/Soldador Polidor Carregador/Foscador Vertech"`
	Shift          *string `json:"shift,omitempty" validate:"omitempty,oneof=Manhã Tarde Noite"`
	Team           *string `json:"team,omitempty" validate:"omitempty,oneof=A1 A2 A3 A4 B1 B2 B3 B4 C1 C2 C3 C4 Diaria"`
	Vacation       *string `json:"vacation,omitempty"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	HireDate       *string `json:"hire_date,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}

	required := []struct {
		field string
		value *string
	}{
		{"name", r.Name},
		{"registration_id", r.RegistrationID},
		{"role", r.Role},
		{"shift", r.Shift},
		{"team", r.Team},
		{"phone", r.Phone},
	}
	for _, f := range required {
		if f.value == nil {
			continue
		}
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			errs = append(errs, validator.ValidationError{Field: f.field, Message: f.field + " cannot be empty"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return validator.Struct(r)
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	RegistrationID string          `json:"registration_id"`
	Role           Role            `json:"role"`
	Shift          Shift           `json:"shift"`
	Team           Team            `json:"team"`
	Vacation       string          `json:"vacation"`
	Phone          string          `json:"phone"`
	HireDate       string          `json:"hire_date"`
	PhotoURL       string          `json:"photo_url"`
	WhatsAppURL    string          `json:"whatsapp_url,omitempty"`
	VacationStatus vacation.Status `json:"vacation_status"`
	StatusLabel    string          `json:"status_label"`
	StatusStyle    string          `json:"status_style"`
	BadgeStyle     string          `json:"badge_style"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewEmployeeResponse decorates e with its vacation status at now.
func NewEmployeeResponse(e Employee, now time.Time) EmployeeResponse {
	status := e.VacationStatus(now)
	return EmployeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		RegistrationID: e.RegistrationID,
		Role:           e.Role,
		Shift:          e.Shift,
		Team:           e.Team,
		Vacation:       e.Vacation,
		Phone:          e.Phone,
		HireDate:       e.HireDate,
		PhotoURL:       e.PhotoURL,
		WhatsAppURL:    e.WhatsAppURL(),
		VacationStatus: status,
		StatusLabel:    status.Label(),
		StatusStyle:    status.StyleTag(),
		BadgeStyle:     status.BadgeTag(),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// FilterAll matches any value of a dimension.
const FilterAll = "todos"

type VacationFilter string

const (
	VacationFilterAll         VacationFilter = FilterAll
	VacationFilterOnVacation  VacationFilter = "feriados"
	VacationFilterUpcoming    VacationFilter = "proximos"
	VacationFilterOverdue     VacationFilter = "atrasadas"
	VacationFilterThisMonth   VacationFilter = "este-mes"
	VacationFilterNotInformed VacationFilter = "nao-informado"
)

type EmployeeFilter struct {
	Shift    string
	Role     string
	Team     string
	Vacation VacationFilter
	Query    string
}

func (f EmployeeFilter) Validate() error {
	switch f.Vacation {
	case "", VacationFilterAll, VacationFilterOnVacation, VacationFilterUpcoming,
		VacationFilterOverdue, VacationFilterThisMonth, VacationFilterNotInformed:
		return nil
	}
	return validator.ValidationErrors{{Field: "vacation", Message: ErrInvalidVacationFilter.Error()}}
}

// Match reports whether e passes every dimension of the filter at now.
func (f EmployeeFilter) Match(e Employee, now time.Time) bool {
	if !matchValue(f.Shift, string(e.Shift)) || !matchValue(f.Role, string(e.Role)) || !matchValue(f.Team, string(e.Team)) {
		return false
	}

	switch f.Vacation {
	case VacationFilterOnVacation, VacationFilterThisMonth:
		if e.VacationStatus(now) != vacation.StatusCurrent {
			return false
		}
	case VacationFilterUpcoming:
		if e.VacationStatus(now) != vacation.StatusUpcoming {
			return false
		}
	case VacationFilterOverdue:
		if e.VacationStatus(now) != vacation.StatusOverdue {
			return false
		}
	case VacationFilterNotInformed:
		if e.Vacation != NotInformed {
			return false
		}
	}

	query := strings.TrimSpace(f.Query)
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(e.searchText()), fold.String(query))
}

func matchValue(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

func (e Employee) searchText() string {
	return strings.Join([]string{
		e.Name, e.RegistrationID, string(e.Role), string(e.Team), e.Vacation, e.Phone, e.HireDate,
	}, " ")
}
