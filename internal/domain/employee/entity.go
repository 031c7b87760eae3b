package employee

import (
	"strings"
	"time"
	"unicode"

	"github.com/wmoldes/roster-backend/internal/domain/vacation"
)

type Employee struct {
	ID             string
	Name           string
	RegistrationID string
	Role           Role
	Shift          Shift
	Team           Team
	Vacation       string
	Phone          string
	HireDate       string
	PhotoURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Shift string

const (
	ShiftMorning   Shift = "Manhã"
	ShiftAfternoon Shift = "Tarde"
	ShiftNight     Shift = "Noite"
)

// Shifts lists the shifts in board order.
var Shifts = []Shift{ShiftMorning, ShiftAfternoon, ShiftNight}

func (s Shift) Valid() bool {
	for _, known := range Shifts {
		if s == known {
			return true
		}
	}
	return false
}

type Role string

const (
	RoleLeader         Role = "Lider"
	RoleAdjuster       Role = "Ajustador"
	RoleAdjusterWelder Role = "Ajustador/Soldador"
	RolePolisher       Role = "Polidor"
	RoleLoaderFrosting Role = "Carregador/Foscador"
	RoleVertech        Role = "Vertech"
)

var Roles = []Role{RoleLeader, RoleAdjuster, RoleAdjusterWelder, RolePolisher, RoleLoaderFrosting, RoleVertech}

type Team string

var Teams = []Team{
	"A1", "A2", "A3", "A4",
	"B1", "B2", "B3", "B4",
	"C1", "C2", "C3", "C4",
	"Diaria",
}

// NotInformed is stored for vacation and hire date when they are left blank.
const NotInformed = vacation.NotInformed

// DefaultPhotoURL is used when an employee has no photo.
const DefaultPhotoURL = "https://via.placeholder.com/400x200/6b7280/9ca3af?text=Sem+Foto"

// ApplyDefaults fills blank optional fields with their stored defaults.
func (e *Employee) ApplyDefaults() {
	if strings.TrimSpace(e.Vacation) == "" {
		e.Vacation = NotInformed
	}
	if strings.TrimSpace(e.HireDate) == "" {
		e.HireDate = NotInformed
	}
	if strings.TrimSpace(e.PhotoURL) == "" {
		e.PhotoURL = DefaultPhotoURL
	}
}

// Apply merges the fields present in req into e.
func (e *Employee) Apply(req UpdateEmployeeRequest) {
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.RegistrationID != nil {
		e.RegistrationID = *req.RegistrationID
	}
	if req.Role != nil {
		e.Role = Role(*req.Role)
	}
	if req.Shift != nil {
		e.Shift = Shift(*req.Shift)
	}
	if req.Team != nil {
		e.Team = Team(*req.Team)
	}
	if req.Vacation != nil {
		e.Vacation = *req.Vacation
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.HireDate != nil {
		e.HireDate = *req.HireDate
	}
	if req.PhotoURL != nil {
		e.PhotoURL = *req.PhotoURL
	}
	e.ApplyDefaults()
}

// VacationStatus classifies the employee's vacation month relative to now.
func (e Employee) VacationStatus(now time.Time) vacation.Status {
	return vacation.Classify(e.Vacation, now)
}

// WhatsAppURL returns a wa.me link for the phone number with the Brazilian country code.
func (e Employee) WhatsAppURL() string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, e.Phone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/55" + digits
}
